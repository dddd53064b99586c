// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"fmt"
)

func ExampleInt() {
	x := MustFromString("100_200_100")
	y := MustFromString("300_200_100")

	fmt.Printf("binary plus says: %v\n", x.Add(y))
	fmt.Printf("binary minus says: %v\n", x.Sub(y))
	fmt.Printf("binary star says: %v\n", x.Mul(y))

	// Output:
	// binary plus says: 400400200
	// binary minus says: -200000000
	// binary star says: 30080080040010000
}

func ExampleFromString() {
	v, err := FromString("-123_456_789")
	if err != nil {
		panic(err)
	}
	fmt.Println(v.String())

	doubled := v.MulInt64(2)
	fmt.Println(doubled.String())
	fmt.Println(v.Less(doubled))

	if _, err = FromString("12ab"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// -123456789
	// -246913578
	// true
	// parsing failed: unexpected symbol 'a' at pos 2
}
