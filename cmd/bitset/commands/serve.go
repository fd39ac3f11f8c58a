// cmd/bitset/commands/serve.go
package commands

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"bitset/internal/netservice"
	"bitset/internal/registry"
)

// ServeCommand starts the websocket algebra service on addr. Sets it
// serves are registered in-memory only. The service is started without a
// store, so its "reduce" op always fails.
func ServeCommand(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: bitset serve <addr>")
	}
	addr := args[0]
	reg := registry.New()
	srv := netservice.NewServer(reg, nil)
	fmt.Printf("bitset: serving websocket algebra on %s\n", addr)
	return http.ListenAndServe(addr, srv)
}
