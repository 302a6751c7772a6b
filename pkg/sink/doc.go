// Package sink exports computed chart layouts.
//
// [RenderJSON] writes the geometry of any number of gauges, cards and pies
// as one JSON document. Each chart carries its layout fields plus the
// derived transform strings a renderer would otherwise have to rebuild:
//
//	var doc sink.Document
//	doc.AddGauge("cpu", gauge.Update(in))
//	doc.AddPie("share", pie.Update(pin))
//	data, err := sink.RenderJSON(doc, sink.WithJSONLocale("de"))
//
// The output is meant for external renderers, snapshot tests and the
// `chartkit layout` command.
package sink
