package vmodel

import (
	"bytes"
	"errors"
	"testing"
)

var sink []byte

func TestHeaderRoundtrip(t *testing.T) {
	h := Header{ID: 200000, Version: 100000}
	body := make([]byte, 8)
	data := Prepend(body, h)
	if len(data) != 16 {
		t.Fatalf("len = %d, want 16", len(data))
	}
	got, rest, err := ReadHeader(data)
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if got != h {
		t.Fatalf("header = %+v, want %+v", got, h)
	}
	if len(rest) != 8 {
		t.Fatalf("body len = %d, want 8", len(rest))
	}
}

func TestHeaderLayout(t *testing.T) {
	h := Header{ID: 0x04030201, Version: 0x08070605}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if !bytes.Equal(h.Bytes(), want) {
		t.Fatalf("bytes = %v, want %v", h.Bytes(), want)
	}
	if got := AppendHeader([]byte{0xff}, h); !bytes.Equal(got, append([]byte{0xff}, want...)) {
		t.Fatalf("append = %v", got)
	}
}

func TestReadHeaderShort(t *testing.T) {
	for n := 0; n < HeaderSize; n++ {
		_, _, err := ReadHeader(make([]byte, n))
		if !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("len %d: expected ErrInvalidHeader, got %v", n, err)
		}
	}
	if _, rest, err := ReadHeader(make([]byte, HeaderSize)); err != nil || len(rest) != 0 {
		t.Fatalf("empty body: rest=%v err=%v", rest, err)
	}
}

func TestReadHeaderDoesNotCopyBody(t *testing.T) {
	data := Prepend([]byte("body"), Header{ID: 1, Version: 1})
	_, rest, err := ReadHeader(data)
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if &rest[0] != &data[HeaderSize] {
		t.Fatalf("body is a copy")
	}
}

func TestPrependAllocatesOnce(t *testing.T) {
	body := bytes.Repeat([]byte{0xab}, 4096)
	h := Header{ID: 1, Version: 2}
	allocs := testing.AllocsPerRun(100, func() {
		sink = Prepend(body, h)
	})
	if allocs != 1 {
		t.Fatalf("allocs = %v, want 1", allocs)
	}
	out := Prepend(body, h)
	if cap(out) != HeaderSize+len(body) {
		t.Fatalf("cap = %d, want %d", cap(out), HeaderSize+len(body))
	}
	if !bytes.Equal(out[HeaderSize:], body) {
		t.Fatalf("body mismatch")
	}
}

func TestPrependDoesNotAliasBody(t *testing.T) {
	body := []byte{1, 2, 3}
	out := Prepend(body, Header{})
	body[0] = 9
	if out[HeaderSize] != 1 {
		t.Fatalf("envelope aliases body")
	}
}

func TestSetHeader(t *testing.T) {
	data := Prepend([]byte("x"), Header{ID: 1, Version: 1})
	if err := SetHeader(data, Header{ID: 7, Version: 3}); err != nil {
		t.Fatalf("set header: %v", err)
	}
	h, err := Peek(data)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if h != (Header{ID: 7, Version: 3}) {
		t.Fatalf("header = %+v", h)
	}
	if data[HeaderSize] != 'x' {
		t.Fatalf("body changed")
	}
	if err := SetHeader(make([]byte, 4), Header{}); !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}

func BenchmarkPrepend(b *testing.B) {
	body := bytes.Repeat([]byte{0xab}, 1<<16)
	h := Header{ID: 1, Version: 1}
	b.SetBytes(int64(len(body)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = Prepend(body, h)
	}
}
