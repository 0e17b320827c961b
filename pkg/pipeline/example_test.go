package pipeline_test

import (
	"fmt"

	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/options"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/themes"
)

func ExampleRun() {
	set := langs.Set{
		"Go":     {Name: "Go", Size: 6000, Color: "#00ADD8", RecentSize: 7000},
		"Python": {Name: "Python", Size: 3000, Color: "#3572A5"},
		"Shell":  {Name: "Shell", Size: 1000},
	}

	result := pipeline.Run(set, options.Defaults(), themes.Resolver{})
	for _, bar := range result.Fragment.Bars {
		fmt.Printf("%s %v%% (recent %v%%)\n", bar.Name, bar.Percent, bar.Recent)
	}
	fmt.Println("height:", result.Fragment.Height)
	// Output:
	// Go 60% (recent 70%)
	// Python 30% (recent 0%)
	// Shell 10% (recent 0%)
	// height: 205
}

func ExampleRun_compact() {
	set := langs.Set{
		"Go":   {Name: "Go", Size: 95},
		"HTML": {Name: "HTML", Size: 5},
	}
	opts := options.Defaults()
	opts.Layout = "compact"

	result := pipeline.Run(set, opts, nil)
	for _, bar := range result.Fragment.Bars {
		fmt.Printf("%s x=%v width=%v\n", bar.Name, bar.X, bar.Width)
	}
	// Output:
	// Go x=0 width=285
	// HTML x=285 width=15
}
