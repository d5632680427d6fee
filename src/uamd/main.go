// uamd is the user access manager API server.
// It exposes a REST API on port 3000 for registration, authentication and
// admin-scoped user management.
package main

import (
	"github.com/bitswalk/uam/src/uamd/core"
)

func main() {
	core.Execute()
}
