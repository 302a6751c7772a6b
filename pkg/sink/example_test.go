package sink_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/sink"
)

func ExampleRenderJSON() {
	var doc sink.Document
	doc.AddCard("visits", chart.CardLayout{X: 0, Y: 0, CardWidth: 120, CardHeight: 80, Label: "Visits", Value: "42"})

	data, err := sink.RenderJSON(doc, sink.WithJSONCompact())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(data) > 0, doc.Len())
	// Output: true 1
}
