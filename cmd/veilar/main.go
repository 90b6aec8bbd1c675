// Command veilar previews and inspects style sheets.
//
//	veilar inspect sheet.yaml
//	veilar render sheet.yaml --out previews/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
