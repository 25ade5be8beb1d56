package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run from the repo root: go run ./db/ent
// Generated code lands in gen/ent and is not checked in.
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/xyzruben/steward/gen/ent",
			Schema:  "github.com/xyzruben/steward/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
