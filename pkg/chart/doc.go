// Package chart runs the update cycle of individual charts.
//
// Each chart type combines the layout packages in a fixed order: view
// dimensions from the outer size and margins, then scales over the inner
// area, then colors, and finally text fitting and label placement once the
// geometry is known. Value displays additionally start a count animation.
//
// Charts are independent of any rendering surface. [LinearGauge.Update],
// [NumberCard.Update] and [PieChart.Update] return layout snapshots that a
// renderer draws; charts with asynchronous work (text fitting, counting)
// publish later snapshots to the function registered with OnChange.
//
// All asynchronous work runs on the injected [schedule.Scheduler], so a
// [schedule.Loop] keeps every chart single threaded and a [schedule.Manual]
// makes them fully deterministic in tests.
//
// [schedule.Scheduler]: github.com/matzehuels/chartkit/pkg/schedule
// [schedule.Loop]: github.com/matzehuels/chartkit/pkg/schedule
// [schedule.Manual]: github.com/matzehuels/chartkit/pkg/schedule
package chart
