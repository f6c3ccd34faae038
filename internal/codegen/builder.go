// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

// Generator builds target models. A Generator holds configuration only and
// may be used for any number of runs.
type Generator struct {
	opts      Options
	profile   Profile
	log       *zap.SugaredLogger
	overrides *overrides
}

// NewGenerator validates opts and creates a Generator.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Profile.Name == "" {
		opts.Profile = Kotlin
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	o, err := newOverrides(opts.CustomClasses, opts.BaseURI)
	if err != nil {
		return nil, err
	}
	return &Generator{
		opts:      opts,
		profile:   opts.Profile,
		log:       log,
		overrides: o,
	}, nil
}

// Build generates one target per input that describes an object or an
// identifier-safe string enumeration. Inputs of any other shape are logged
// and skipped.
//
// All inputs are registered before any of them is analyzed, so a property
// may reference a target that appears later in the batch.
func (g *Generator) Build(inputs []Input) (*Result, error) {
	reg := newRegistry()
	for i, in := range inputs {
		if in.Schema == nil {
			return nil, errors.Newf("input %d has no schema", i)
		}
		if err := reg.add(g.newUnit(in, i)); err != nil {
			return nil, err
		}
	}

	b := &build{Generator: g, reg: reg}
	res := &Result{}

	for _, u := range reg.units {
		if err := b.classifyRoot(u); err != nil {
			if err := g.fail(res, u, err); err != nil {
				return nil, err
			}
		}
	}
	for _, u := range reg.units {
		if !u.generated || u.err != nil {
			continue
		}
		if err := b.analyzeRoot(u); err != nil {
			if err := g.fail(res, u, err); err != nil {
				return nil, err
			}
		}
	}

	for _, u := range reg.units {
		if u.generated && u.err == nil {
			res.Targets = append(res.Targets, u.target)
		}
	}
	return res, nil
}

// BuildSchema generates the target for a schema built in memory.
func (g *Generator) BuildSchema(className string, s *jsonschema.Schema) (*model.Target, error) {
	schema, err := jschema.FromJSONSchema(s, className+".json")
	if err != nil {
		return nil, err
	}
	res, err := g.Build([]Input{{Schema: schema, ClassName: className}})
	if err != nil {
		return nil, err
	}
	if len(res.Failures) > 0 {
		return nil, res.Failures[0].Err
	}
	if len(res.Targets) == 0 {
		return nil, errors.Newf("schema for %s describes neither a class nor an enumeration", className)
	}
	return res.Targets[0], nil
}

func (g *Generator) newUnit(in Input, index int) *unit {
	name := ToClassName(in.ClassName)
	if name == "" {
		name = ClassNameFromSource(in.Source)
	}
	if name == "" {
		name = ClassNameFromSource(in.Schema.URI)
	}
	if name == "" {
		name = fmt.Sprintf("GeneratedClass%d", index+1)
	}

	source := in.Source
	if source == "" {
		source = model.InMemorySource
	}
	return &unit{
		input: in,
		target: &model.Target{
			Name:       name,
			Package:    PackageName(g.opts.BasePackage, in.SubDir, g.opts.DerivePackages, g.profile),
			FileSuffix: g.profile.FileSuffix,
			Source:     source,
			URI:        in.Schema.URI,
		},
		pool:   NewStaticPool(),
		nested: make(map[*jschema.Schema]*model.Target),
	}
}

// fail records a failed unit. It returns err unless the run keeps going.
func (g *Generator) fail(res *Result, u *unit, err error) error {
	u.err = err
	if !g.opts.KeepGoing {
		return err
	}
	g.log.Errorw("target not generated", "class", u.target.Name, "source", origin(u), "error", err)
	res.Failures = append(res.Failures, Failure{Input: u.input, Err: err})
	return nil
}

// build is the state of one run.
type build struct {
	*Generator
	reg *registry
}

func (b *build) classifyRoot(u *unit) error {
	t := u.target
	c := model.NewConstraints(t.Name, b.profile.IntRange)
	u.constraints = c
	t.Constraints = c

	if err := newAccumulator(b.log).accumulate(u.input.Schema, c); err != nil {
		return err
	}
	classify(c)
	t.Description = description(c)

	if c.IsObject() {
		t.Kind = model.KindClass
		u.generated = true
		return nil
	}
	if members, ok := enumMembers(c, b.profile); ok {
		t.Kind = model.KindEnum
		t.EnumValues = members
		u.generated = true
		return nil
	}
	b.log.Infow("no target generated", "class", t.Name, "source", origin(u), "category", c.Category)
	return nil
}

func (b *build) analyzeRoot(u *unit) error {
	defer func() { u.target.Statics = u.pool.Fields() }()
	if u.target.Kind != model.KindClass {
		return nil
	}
	return b.analyzeObject(u, u.target, u.constraints, u.input.Schema)
}

func (b *build) analyzeObject(u *unit, t *model.Target, c *model.Constraints, node *jschema.Schema) error {
	if base := b.reg.baseOf(node); base != nil && base.generated && base.err == nil &&
		base.target.Kind == model.KindClass && base.target != t {
		t.Base = base.target
		b.importTarget(u, base.target)
		inherit(c, base.target)
	}
	for _, p := range c.Properties {
		if p.Inherited {
			continue
		}
		if err := b.analyzeProperty(u, t, p); err != nil {
			return err
		}
	}
	return nil
}

func (b *build) analyzeProperty(u *unit, owner *model.Target, p *model.Constraints) error {
	if class, ok := b.overrides.match(p); ok {
		p.CustomClass = &class
		b.importClass(u, class)
		return nil
	}
	if err := b.resolveType(u, owner, p); err != nil {
		return err
	}
	b.checkDefault(p)
	return nil
}

// resolveType assigns the type of a property: a registered target, a nested
// helper target, a system class or a primitive with validations.
func (b *build) resolveType(u *unit, owner *model.Target, p *model.Constraints) error {
	if p.Ref != nil {
		if ref := b.reg.lookup(p.Ref); ref != nil {
			if ref.err != nil {
				return errors.At(errors.ErrUnresolvedReference, p.Schema.URI,
					"referenced class %s was not generated", ref.target.Name)
			}
			if ref.generated {
				b.useTarget(p, ref.target)
				b.importTarget(u, ref.target)
				return nil
			}
		}
	}

	node := definingNode(p)
	if p.SelfRef {
		if t, ok := u.nested[node]; ok {
			b.useTarget(p, t)
			return nil
		}
		return errors.At(errors.ErrUnresolvedReference, p.Schema.URI,
			"recursive reference to %s has no generated class", p.Ref.URI)
	}

	classify(p)
	switch p.Category {
	case model.CategoryObject:
		if _, err := b.nestedTarget(u, owner, p, node, model.KindClass, nil); err != nil {
			return err
		}
	case model.CategoryArray:
		if items := p.ArrayItems; items != nil {
			items.Name = singular(p.Name)
			if err := b.analyzeProperty(u, owner, items); err != nil {
				return err
			}
		}
		arrayValidations(p)
	case model.CategoryString:
		if members, ok := enumMembers(p, b.profile); ok {
			_, err := b.nestedTarget(u, owner, p, node, model.KindEnum, members)
			return err
		}
		return b.stringValidations(u, p)
	case model.CategoryInt, model.CategoryLong, model.CategoryDecimal:
		return b.numberValidations(u, p)
	}
	return nil
}

// definingNode returns the node a position is generated from: the end of
// its chain of bare references, or its own node.
func definingNode(p *model.Constraints) *jschema.Schema {
	node := p.Schema
	if p.Ref != nil {
		node = p.Ref
	}
	seen := map[*jschema.Schema]bool{}
	for node != nil && !seen[node] {
		seen[node] = true
		ref := node.BareRef()
		if ref == nil || ref.Target == nil {
			break
		}
		node = ref.Target
	}
	return node
}

func (b *build) useTarget(p *model.Constraints, t *model.Target) {
	p.LocalType = t
	p.SystemClass = model.SystemNone
	if t.Kind == model.KindEnum {
		p.Category = model.CategoryString
	} else {
		p.Category = model.CategoryObject
	}
}

// nestedTarget returns the helper target generated for node inside the unit,
// creating it under owner on first use.
func (b *build) nestedTarget(u *unit, owner *model.Target, p *model.Constraints, node *jschema.Schema,
	kind model.Kind, members []string) (*model.Target, error) {
	if t, ok := u.nested[node]; ok {
		b.useTarget(p, t)
		return t, nil
	}

	name := ToClassName(p.Name)
	if name == "" {
		name = owner.Name + "Item"
	}
	if existing, ok := owner.FindNested(name); ok {
		return nil, errors.WithHint(
			errors.At(errors.ErrNameCollision, p.Schema.URI, "class %q in %s is generated from both %s and %s",
				name, owner.Name, existing.URI, node.URI),
			"rename one of the properties or move the schema to $defs")
	}

	t := &model.Target{
		Name:        name,
		Package:     owner.Package,
		Kind:        kind,
		FileSuffix:  owner.FileSuffix,
		Source:      u.target.Source,
		URI:         node.URI,
		Description: description(p),
		Parent:      owner,
		EnumValues:  members,
	}
	u.nested[node] = t
	owner.Nested = append(owner.Nested, t)
	b.useTarget(p, t)

	if kind == model.KindClass {
		t.Constraints = p
		if err := b.analyzeObject(u, t, p, node); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (b *build) importTarget(u *unit, t *model.Target) {
	b.importClass(u, t.Ref())
}

func (b *build) importClass(u *unit, class model.ClassRef) {
	if class.Package == "" || class.Package == u.target.Package {
		return
	}
	u.target.AddImport(class.String())
}

func description(c *model.Constraints) string {
	if c.Description != "" {
		return c.Description
	}
	return c.Title
}
