package vmodel

import (
	"errors"
	"fmt"

	"go.hasen.dev/vmodel/codec"
	"go.hasen.dev/vmodel/vpack"
)

// Point: two versions, id 1, compact vpack bodies.

type PointV1 struct {
	X uint32
	Y uint32
}

type PointV2 struct {
	Name string
	X    uint64
	Y    uint64
}

func packPointV1(p *PointV1, buf *vpack.Buffer) {
	vpack.VUInt32(&p.X, buf)
	vpack.VUInt32(&p.Y, buf)
}

func packPointV2(p *PointV2, buf *vpack.Buffer) {
	vpack.String(&p.Name, buf)
	vpack.VUInt64(&p.X, buf)
	vpack.VUInt64(&p.Y, buf)
}

var (
	pointV1 = Root(1, 1, codec.Pack[PointV1](packPointV1))
	pointV2 = From(pointV1, 2, codec.Pack[PointV2](packPointV2),
		func(p PointV1) PointV2 { return PointV2{X: uint64(p.X), Y: uint64(p.Y)} },
		func(p PointV2) PointV1 { return PointV1{X: uint32(p.X), Y: uint32(p.Y)} },
	)
)

// Trail: three versions, id 2, JSON bodies. Every conversion appends to Steps
// so tests can see which ran and in what order.

type TrailA struct {
	N     int
	Steps []string
}

type TrailB struct {
	N     int
	Label string
	Steps []string
}

type TrailC struct {
	N     int64
	Label string
	Tags  []string
	Steps []string
}

func appendStep(steps []string, s string) []string {
	return append(append([]string(nil), steps...), s)
}

func trailAToB(a TrailA) TrailB {
	return TrailB{N: a.N, Label: fmt.Sprintf("n=%d", a.N), Steps: appendStep(a.Steps, "a->b")}
}

func trailBToA(b TrailB) TrailA {
	return TrailA{N: b.N, Steps: appendStep(b.Steps, "b->a")}
}

func trailBToC(b TrailB) TrailC {
	return TrailC{N: int64(b.N) * 10, Label: b.Label, Steps: appendStep(b.Steps, "b->c")}
}

func trailCToB(c TrailC) TrailB {
	return TrailB{N: int(c.N / 10), Label: c.Label, Steps: appendStep(c.Steps, "c->b")}
}

var (
	trailA = Root(2, 1, codec.JSON[TrailA]())
	trailB = From(trailA, 2, codec.JSON[TrailB](), trailAToB, trailBToA)
	trailC = From(trailB, 3, codec.JSON[TrailC](), trailBToC, trailCToB)
)

// Limit: two versions, id 3, fallible both ways.

type LimitV1 struct{ X int }

type LimitV2 struct{ X int }

var errTooBig = errors.New("x > 10")

func limitUp(v LimitV1) (LimitV2, error) {
	if v.X > 10 {
		return LimitV2{}, errTooBig
	}
	return LimitV2{X: v.X}, nil
}

func limitDown(v LimitV2) (LimitV1, error) {
	if v.X > 10 {
		return LimitV1{}, errTooBig
	}
	return LimitV1{X: v.X}, nil
}

var (
	limitV1 = Root(3, 1, codec.MustCBOR[LimitV1]())
	limitV2 = TryFrom(limitV1, 2, codec.MustCBOR[LimitV2](), limitUp, limitDown)
)
