package ir

import (
	"fmt"

	"github.com/metarhia/jstp-go/ir/kpath"
)

// GetKPath returns the value at kinded path kp, such as "a.b[0]". The empty
// path is y itself.
func (y *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return y.getKPath(p)
}

func (y *Node) getKPath(p *kpath.KPath) (*Node, error) {
	res := y
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: field %s of %s", ErrNoPath, x.SegmentString(), res.Type)
			}
			v := res.Get(*x.Field)
			if v == nil {
				return nil, fmt.Errorf("%w: no field %s", ErrNoPath, x.SegmentString())
			}
			res = v
		case x.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: index %s of %s", ErrNoPath, x.SegmentString(), res.Type)
			}
			if *x.Index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %s out of range", ErrNoPath, x.SegmentString())
			}
			res = res.Values[*x.Index]
		}
	}
	return res, nil
}
