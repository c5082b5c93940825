// SPDX-License-Identifier: MIT
// Package report renders query results.
//
// Three formats are supported:
//
//   - text: the sectioned plain-text layout ("Vertex: 3 -> Level: 1 | Parent: 1",
//     "Component 1 -> Vertices: [1 2 3] | Size: 3", ...).
//   - yaml: gopkg.in/yaml.v3 encoding of the plain view structs.
//   - json: encoding/json of the same views, indented.
//
// Views never carry +Inf: an unreachable distance is encoded as an absent
// field, a missing parent likewise.
package report
