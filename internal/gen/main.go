// Command gen regenerates circuit/inject_tuple_gen.go: the fixed-arity
// (2..5) tuple Inject lifts the spec calls for (§4.1, §9 "a helper macro to
// implement Inject for a tuple ... generate the tuple lifts for arities
// 2..5 via code generation or macro expansion"). It uses
// github.com/consensys/bavard the same way gnark-crypto's own internal
// generators do: a Go template plus a license-header option, rendered to a
// "Code generated ... DO NOT EDIT" file.
//
//go:generate go run .
package main

import (
	"log"

	"github.com/consensys/bavard"
)

const tupleTemplate = `
{{range $arity := .Arities}}
// InjectTuple{{$arity}} lifts a {{$arity}}-tuple of primitives into the
// corresponding {{$arity}}-tuple of circuit values, injecting each
// position independently under the same mode (§4.1).
func InjectTuple{{$arity}}[
	{{range $i := seq $arity}}{{if $i}}, {{end}}C{{$i}}{{end}} any,
	{{range $i := seq $arity}}{{if $i}}, {{end}}P{{$i}}{{end}} any](
	{{range $i := seq $arity}}new{{$i}} InjectFunc[C{{$i}}, P{{$i}}],
	{{end}}
	mode Mode,
	{{range $i := seq $arity}}v{{$i}} P{{$i}},
	{{end}}
) ({{range $i := seq $arity}}{{if $i}}, {{end}}C{{$i}}{{end}}) {
	return {{range $i := seq $arity}}{{if $i}}, {{end}}new{{$i}}(mode, v{{$i}}){{end}}
}
{{end}}
`

// arities is the fixed set the spec names: 2..5.
var arities = []int{2, 3, 4, 5}

func main() {
	seq := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	bavardOpts := []func(*bavard.Bavard) error{
		bavard.Apache2("ConsenSys Software Inc.", 2020),
		bavard.Package("circuit"),
		bavard.GeneratedBy("aleo-circuit/internal/gen"),
	}

	funcs := map[string]interface{}{"seq": seq}
	data := struct{ Arities []int }{Arities: arities}

	if err := bavard.Generate("../../circuit/inject_tuple_gen.go", []string{tupleTemplate}, data,
		append(bavardOpts, bavard.Funcs(funcs))...); err != nil {
		log.Fatalf("generate tuple lifts: %v", err)
	}
}
