// File: catalog.go
// Title: YAML Command Catalog
// Description: Implements catalog documents describing an engine's
//              registered commands, with YAML load/save and verification
//              of a loaded catalog against a live engine.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/engine"
	"github.com/zhitkovns/engine-wrapper/value"
)

// Param documents one parameter of a cataloged command. Type holds the
// stable tag name (int, float, string, bool).
type Param struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

// Entry documents one command.
type Entry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Params      []Param  `yaml:"params,omitempty"`
	Returns     string   `yaml:"returns"`
	Examples    []string `yaml:"examples,omitempty"`
}

// Document is a command catalog: one entry per command, in export
// order (sorted by name when produced by Export).
type Document struct {
	Commands []Entry `yaml:"commands"`
}

// Export snapshots every command registered in the engine into a
// catalog document. Descriptions and examples start empty; they are
// maintained in the YAML, not in code.
func Export(e *engine.Engine) *Document {
	doc := &Document{}
	for _, name := range e.List() {
		info, err := e.Info(name)
		if err != nil {
			// The command disappeared between List and Info; skip it.
			continue
		}
		doc.Commands = append(doc.Commands, entryFromInfo(info))
	}
	return doc
}

func entryFromInfo(info command.Info) Entry {
	entry := Entry{
		Name:    info.Name,
		Returns: info.ReturnType.String(),
	}
	for i, pname := range info.ParamNames {
		entry.Params = append(entry.Params, Param{
			Name: pname,
			Type: info.ParamTypes[i].String(),
		})
	}
	return entry
}

// Load parses a YAML catalog document.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse document: %w", err)
	}
	return &doc, nil
}

// Save serializes the document as YAML.
func (d *Document) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("catalog: failed to serialize document: %w", err)
	}
	return enc.Close()
}

// Lookup finds the entry for a command name.
func (d *Document) Lookup(name string) (*Entry, bool) {
	for i := range d.Commands {
		if d.Commands[i].Name == name {
			return &d.Commands[i], true
		}
	}
	return nil, false
}

// Verify checks the catalog against a live engine. Every cataloged
// command must be registered, with matching parameter names, parameter
// types, and return type. The first divergence is reported; a clean
// catalog yields nil.
func (d *Document) Verify(e *engine.Engine) error {
	for _, entry := range d.Commands {
		info, err := e.Info(entry.Name)
		if err != nil {
			return command.NewError(command.CodeNotFound,
				"cataloged command is not registered").WithCommand(entry.Name)
		}

		if len(entry.Params) != len(info.ParamNames) {
			return command.Errorf(command.CodeConfiguration,
				"catalog lists %d parameters, engine has %d",
				len(entry.Params), len(info.ParamNames)).WithCommand(entry.Name)
		}

		for i, p := range entry.Params {
			if p.Name != info.ParamNames[i] {
				return command.Errorf(command.CodeConfiguration,
					"catalog parameter %q at position %d, engine has %q",
					p.Name, i, info.ParamNames[i]).WithCommand(entry.Name)
			}
			tag, ok := value.ParseTag(p.Type)
			if !ok {
				return command.Errorf(command.CodeConfiguration,
					"unknown parameter type %q", p.Type).
					WithCommand(entry.Name).WithParam(p.Name)
			}
			if tag != info.ParamTypes[i] {
				return command.NewError(command.CodeConfiguration,
					"catalog parameter type diverges from engine").
					WithCommand(entry.Name).WithParam(p.Name).
					WithTypes(info.ParamTypes[i], tag)
			}
		}

		retTag, ok := value.ParseTag(entry.Returns)
		if !ok {
			return command.Errorf(command.CodeConfiguration,
				"unknown return type %q", entry.Returns).WithCommand(entry.Name)
		}
		if retTag != info.ReturnType {
			return command.NewError(command.CodeConfiguration,
				"catalog return type diverges from engine").
				WithCommand(entry.Name).
				WithTypes(info.ReturnType, retTag)
		}
	}
	return nil
}
