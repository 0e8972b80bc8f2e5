package ucum

import "fmt"

func ExampleConvert() {
	f, err := Convert(25, "Cel", "[degF]")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f\n", f)
	// Output: 77.0
}

func ExampleAnalyse() {
	info, err := Analyse("kg.m/s2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(info.Display)
	// Output: N
}

func ExampleIsComparable() {
	ok, err := IsComparable("kg", "s")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ok)
	// Output: false
}
