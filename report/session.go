//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package report

import (
	"fmt"
	"io"

	"github.com/markkurossi/twolevel/bitvec"
	"github.com/markkurossi/twolevel/multiplier"
)

// Session holds the results of the unsigned and signed passes over
// the same operands.
type Session struct {
	Unsigned       *multiplier.Multiplier
	UnsignedResult *multiplier.Result
	Signed         *multiplier.Multiplier
	SignedResult   *multiplier.Result
}

// Run multiplies the operands first as unsigned integers and then as
// signed-magnitude integers, and writes both reports to out. The
// template multiplier provides the multiplication options.
func (r *Reporter) Run(out io.Writer, mr, md bitvec.Vector,
	template multiplier.Multiplier) (*Session, error) {

	session := new(Session)

	session.Unsigned = multiplier.New(mr, md)
	session.Unsigned.TwoLevel = template.TwoLevel
	session.Unsigned.Netlist = template.Netlist

	var err error
	session.UnsignedResult, err = session.Unsigned.Multiply()
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "Multiplying as Unsigned Integers:")
	err = r.WriteTrace(out, session.Unsigned, session.UnsignedResult)
	if err != nil {
		return nil, err
	}
	err = WriteUnsignedEquations(out, session.Unsigned,
		session.UnsignedResult)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, Separator)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Multiplying as Signed Integers")

	session.Signed, err = multiplier.SplitSigned(mr, md)
	if err != nil {
		return nil, err
	}
	session.Signed.TwoLevel = template.TwoLevel
	session.Signed.Netlist = template.Netlist

	session.SignedResult, err = session.Signed.Multiply()
	if err != nil {
		return nil, err
	}
	err = r.WriteTrace(out, session.Signed, session.SignedResult)
	if err != nil {
		return nil, err
	}
	err = WriteSignedEquations(out, session.Signed, session.SignedResult)
	if err != nil {
		return nil, err
	}

	return session, nil
}
