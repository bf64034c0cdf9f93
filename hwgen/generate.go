//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package hwgen

import (
	"bufio"
	"io"
	"os"
	"path"
)

// Component defines a generated VHDL entity.
type Component struct {
	Entity string
	Write  func(w io.Writer)
}

// Components returns the components of the multiplier in dependency
// order.
func (p Params) Components() []Component {
	g := p.Geometry()

	result := []Component{
		{
			Entity: EncoderEntity(g.K),
			Write: func(w io.Writer) {
				LeafEncoder(w, g.K)
			},
		},
	}
	if g.Q != g.K {
		result = append(result, Component{
			Entity: EncoderEntity(g.Q),
			Write: func(w io.Writer) {
				LeafEncoder(w, g.Q)
			},
		})
	}
	result = append(result, []Component{
		{
			Entity: EncoderEntity(g.N),
			Write:  p.Encoder,
		},
		{
			Entity: p.ShifterEntity(),
			Write:  p.BarrelShifter,
		},
		{
			Entity: p.DecoderEntity(),
			Write:  p.Decoder,
		},
	}...)
	if p.Adder == AdderRCA {
		result = append(result, Component{
			Entity: p.AdderEntity(),
			Write:  p.RippleCarryAdder,
		})
	}
	result = append(result, Component{
		Entity: p.MultiplierEntity(),
		Write:  p.Multiplier,
	})

	return result
}

// Generate writes all components into the directory dir. It returns
// the names of the created files.
func (p Params) Generate(dir string) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	var files []string
	for _, c := range p.Components() {
		name := path.Join(dir, c.Entity+Suffix)
		if err := writeFile(name, c.Write); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

func writeFile(name string, write func(w io.Writer)) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	write(w)
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
