// Package manifest declares the environment variables an application expects
// in a YAML file and resolves them all at once.
//
//	variables:
//	  - name: APP_PORT
//	    kind: integer
//	    default: 8080
//	  - name: APP_MODE
//	    kind: enumeration
//	    values: [development, staging, production]
//	  - name: APP_HOSTS
//	    kind: list
//	    item_kind: string
//	    separator: ";"
//	    required: false
//
// Each declaration maps onto an env.Get call: kind and item_kind are data
// kind names, values become an enumeration, schema is a JSON schema for
// object variables. Variables are required unless required is false.
//
//	m, err := manifest.ReadFile("envvars.yaml")
//	values, err := m.Resolve(nil)
//
// Resolve does not stop at the first failure; the returned *ResolveError lists
// every variable that could not be read. WriteTemplate renders a commented
// .env skeleton from the same declarations.
package manifest
