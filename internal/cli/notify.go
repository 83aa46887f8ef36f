package cli

import (
	"fmt"
	"io"

	"github.com/andy/pizzabill/internal/service"
)

func cliNotifier(w io.Writer) service.Notifier {
	return service.NotifierFunc(func(msg string) {
		fmt.Fprintf(w, "✓ %s\n", msg)
	})
}
