// stripdemo prints two values and the output of three routines, two
// of which are meant to be removed by external dead-code tooling.
package main // import "honnef.co/go/stripdemo/cmd/stripdemo"

import (
	"log"
	"os"

	"honnef.co/go/stripdemo/demo"
)

func main() {
	log.SetFlags(0)
	if err := demo.Run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
