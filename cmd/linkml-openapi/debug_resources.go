//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"linkml-openapi/internal/gen"
	"linkml-openapi/internal/model"
	"linkml-openapi/internal/openapi"
)

func main() {
	file, err := model.LoadFile("./examples/person-api/schema.yaml")
	if err != nil {
		fmt.Println("load schema:", err)
		os.Exit(1)
	}

	view, err := model.NewView(file)
	if err != nil {
		fmt.Println("build view:", err)
		os.Exit(1)
	}

	generator := gen.New(view, gen.DefaultConfig())

	doc, err := generator.Generate()
	if err != nil {
		fmt.Println("generate:", err)
		spew.Dump(generator.Diagnostics())
		os.Exit(1)
	}

	spew.Dump(doc.Paths.Keys())
	spew.Dump(generator.Diagnostics())

	data, err := openapi.Serialize(doc, openapi.FormatYAML)
	if err != nil {
		fmt.Println("serialize:", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}
