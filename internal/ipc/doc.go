// Package ipc exposes a running viv host over HTTP.
//
// # Routes
//
//	GET  /healthz                                 liveness
//	GET  /workspaces                              snapshot of every workspace
//	GET  /workspaces/{name}                       snapshot of one workspace
//	POST /workspaces/{name}/actions/{action}      run a mappable function
//	POST /workspaces/{name}/layouts/next          cycle the active layout
//	PUT  /workspaces/{name}/layout                activate a layout by name
//	POST /outputs/{name}/resize                   change an output's mode
//
// Action bodies are optional JSON objects of the form {"args": ["0.05"]}.
// Responses are JSON; errors carry the error code:
//
//	{"code": "WORKSPACE_NOT_FOUND", "error": "workspace \"x\" not found"}
//
// Every handler runs its work through server.Server.Do, so requests are
// serialized with everything else on the host's event loop.
//
// [Client] is the matching client used by `viv dispatch --remote`.
package ipc
