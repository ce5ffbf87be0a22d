package template_test

import (
	"fmt"

	"unterpolate/template"
)

func Example() {
	tpl := template.Pattern("{year}-{month}-{day}")

	child, err := template.To(tpl, "2019-10-01")
	if err != nil {
		panic(err)
	}

	fmt.Println(child)

	parent, err := template.From(tpl, child)
	if err != nil {
		panic(err)
	}

	fmt.Println(parent)
	// Output:
	// map[day:01 month:10 year:2019]
	// 2019-10-01
}

func Example_mapping() {
	tpl := template.Mapping{
		"name":  template.Pattern("{last}, {first}"),
		"tags":  template.Sequence{template.Pattern("{tags.primary}"), template.Pattern("{tags.secondary}")},
		"email": template.Pattern("{contact.email}"),
	}

	child, err := template.To(tpl, map[string]any{
		"name":  "Lovelace, Ada",
		"tags":  []any{"math", "poetry"},
		"email": "ada@example.com",
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(child)
	// Output:
	// map[contact:map[email:ada@example.com] first:Ada last:Lovelace tags:map[primary:math secondary:poetry]]
}
