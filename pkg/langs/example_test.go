package langs_test

import (
	"fmt"

	"github.com/matzehuels/toplangs/pkg/langs"
)

func ExampleSelect() {
	set := langs.Set{
		"Go":         {Name: "Go", Size: 8000},
		"Python":     {Name: "Python", Size: 2000},
		"HTML":       {Name: "HTML", Size: 5000},
		"Dockerfile": {Name: "Dockerfile", Size: 100},
	}

	selected := langs.Select(set, []string{" html "}, 2)
	for _, s := range selected {
		fmt.Println(s.Name, s.Size)
	}
	fmt.Println("total:", langs.Total(selected))
	// Output:
	// Go 8000
	// Python 2000
	// total: 10000
}
