// Package dialect provides the backend profiles used to render SQL fragments.
//
// A Profile is selected once when the backend connection is first
// established and is read-only afterwards. It bundles three things:
//
//   - Capabilities: fixed answers to supports-X questions
//   - Hooks: backend renderers; a nil hook falls back to the standard one
//   - Functions: the function template registry
//
// Backends build their profile from NewProfile instead of overriding a base
// type:
//
//	p := cockroach.New(cockroach.WithVersion(dialect.MakeVersion(23, 1)))
//	p.ColumnType(dialect.VarChar, dialect.Size{Length: 255}) // string(255)
//	p.ForUpdateString(dialect.LockOptions{Mode: dialect.PessimisticWrite})
//
// # Dialect Constants
//
// Each backend is identified by a constant string:
//
//	dialect.Postgres    = "postgres"
//	dialect.CockroachDB = "cockroach"
//	dialect.IRIS        = "iris"
//
// # Templates
//
// Extract, timestamp arithmetic and function patterns are templates whose
// positional placeholders ?1, ?2, ... are filled by Template.Render:
//
//	dialect.Template("(?3+(?2)*interval '1 ?1')").Render("day", "5", "created_at")
//
// # Sub-packages
//
//   - dialect/cockroach: CockroachDB profile
//   - dialect/iris: InterSystems IRIS profile
//   - dialect/sql: driver wrapper and version probe
//   - dialect/sql/schema: DDL rendering through a profile
package dialect
