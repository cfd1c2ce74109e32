package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"catalog:view",
		"attempt:create",
		"attempt:save",
		"attempt:submit",
		"attempt:view-own",
		"report:view-own",
		"tiebreak:answer",
	},
	"counselor": {
		"catalog:create",
		"catalog:view",
		"attempt:view-all",
		"report:view-all",
	},
	"admin": {
		"*", // everything
	},
}
