package template_test

import (
	"fmt"

	"unterpolate/template"
)

func ExampleKindOf() {
	fmt.Println(template.KindOf(template.Pattern("{year}")))
	fmt.Println(template.KindOf(template.Sequence{}))
	fmt.Println(template.KindOf(template.Mapping{}))
	fmt.Println(template.KindOf(template.Func(nil)))
	fmt.Println(template.KindOf(nil))
	// Output:
	// KindPattern
	// KindSequence
	// KindMapping
	// KindFunc
	// Kind(0)
}
