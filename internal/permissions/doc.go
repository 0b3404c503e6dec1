// Package permissions is the authorization core of the console.
//
// It holds the static role/permission, role/data-access, position and page
// tables, and pure functions over them. Nothing here performs I/O except the
// Auditor, which hands entries to injected sinks and swallows their failures.
// Unknown roles, permissions and resource types always resolve to a denial.
package permissions
