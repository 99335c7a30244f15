// Package sqldialect holds the error types shared by the dialect profiles and
// the discriminator converter.
//
// The module is split into the following packages:
//
//   - dialect: backend profiles, capability tables and the standard renderers
//   - dialect/cockroach: the CockroachDB profile
//   - dialect/iris: the InterSystems IRIS profile
//   - dialect/sql: database/sql driver wrapper and backend version probe
//   - dialect/sql/schema: DDL rendering and capability validation
//   - metamodel/discriminator: embeddable discriminator value conversion
//   - compiler/discgen: code generation for discriminator mappings
//   - cmd/sqldialect: command line front end for the above
package sqldialect
