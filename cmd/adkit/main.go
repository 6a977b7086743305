// Command adkit executa o pipeline de geração de anúncios pela linha de comando.
//
//	adkit kit --product "Aurora lamp" --brand Lumen
//	adkit ad --platform linkedin --product "Aurora lamp"
//	adkit brand --file logo.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(loadServices).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
