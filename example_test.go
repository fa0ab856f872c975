package vmodel_test

import (
	"errors"
	"fmt"

	"go.hasen.dev/vmodel"
	"go.hasen.dev/vmodel/codec"
)

type DotV1 struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

type DotV2 struct {
	Name string `json:"name"`
	X    uint64 `json:"x"`
	Y    uint64 `json:"y"`
}

var (
	DotV1Model = vmodel.Root(1, 1, codec.JSON[DotV1]())
	DotV2Model = vmodel.From(DotV1Model, 2, codec.JSON[DotV2](),
		func(d DotV1) DotV2 { return DotV2{X: uint64(d.X), Y: uint64(d.Y)} },
		func(d DotV2) DotV1 { return DotV1{X: uint32(d.X), Y: uint32(d.Y)} },
	)
)

func Example() {
	// written by an application that only knows version 1
	old, _ := vmodel.Encode(DotV1Model, DotV1{X: 1, Y: 2})

	// read by one that knows version 2
	dot, version, err := vmodel.Decode(DotV2Model, old)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%+v from v%d\n", dot, version)

	// answered in the sender's version
	dot.X = 10
	reply, _ := vmodel.EncodeDowngrade(DotV2Model, dot, version)
	fmt.Printf("%s\n", reply[vmodel.HeaderSize:])

	// Output:
	// {Name: X:1 Y:2} from v1
	// {"x":10,"y":2}
}

func ExampleDecode_newerData() {
	data, _ := vmodel.Encode(DotV2Model, DotV2{Name: "n", X: 1, Y: 2})

	_, _, err := vmodel.Decode(DotV1Model, data)
	fmt.Println(err)
	fmt.Println(errors.Is(err, vmodel.ErrUpgradeNotSupported))

	// Output:
	// vmodel: upgrade from 2 to 1 is not supported
	// true
}

func ExamplePeek() {
	data, _ := vmodel.Encode(DotV2Model, DotV2{})
	h, _ := vmodel.Peek(data)
	fmt.Println(h.ID, h.Version)

	// Output:
	// 1 2
}
