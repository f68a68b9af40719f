// SPDX-License-Identifier: MIT

// Package chainfile loads chain definitions from JSON and YAML
// documents. A definition names the states, the transition matrix and
// optionally an initial distribution:
//
//	{
//	  "states":  ["sunny", "rainy"],
//	  "matrix":  [[0.8, 0.2], [0.4, 0.6]],
//	  "initial": [1.0, 0.0]
//	}
//
// Decoding is deliberately dumb: the codec only produces raw slices, and
// every decoded field is then pushed through the validation layer
// exactly as if the caller had supplied it directly. A document that
// parses but violates a chain invariant fails with the same structured
// *validate.Error a direct call would produce, so file input and API
// input share one error-handling path.
package chainfile
