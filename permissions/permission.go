// Package permissions maps HTTP endpoints to the module and action the
// caller must be granted. The table is embedded at build time so the binary
// carries its own route policy.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission binds one endpoint to a module capability. Skip marks public
// endpoints. An empty Module with Skip false means the endpoint only
// requires authentication, not a module grant.
type Permission struct {
	Module string `json:"module"`
	Action string `json:"action"`
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up the entry for a route pattern and method. The
// second return is false when the endpoint is not in the table; callers must
// treat that as a denial.
func (r *PermissionData) FindPermissions(path, method string) (Permission, bool) {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}, false
	}

	return r.Endpoints[idx], true
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
