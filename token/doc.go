// Package token provides tokenization of JSTP object notation.
//
// [Tokenizer] is a pull-style lexer: each call to [Tokenizer.Next] scans one
// token from the input and records its kind, payload and starting offset.
// The tokenizer is reusable; [Tokenizer.Reset] installs a new input.
//
// The package also provides the quoting and number formatting helpers used
// to render values back into the notation.
package token
