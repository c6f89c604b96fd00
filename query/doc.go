// Package query evaluates expr-lang expressions against IR nodes.
//
// # Usage
//
//	p, err := query.Compile(`call[1] == 'auth' && len(signIn) == 2`)
//	if err != nil {
//	    return err
//	}
//	ok, err := p.Test(node)
//
//	res, err := query.Eval(node, `_.contacts.address.room[0]`)
//
// The fields of an object root are variables; _ is bound to the whole
// value. Objects appear as map[string]any and arrays as []any. Besides the
// expr builtins, isUndefined(x) reports undefined values and jstp(x)
// renders a value as JSTP text.
package query
