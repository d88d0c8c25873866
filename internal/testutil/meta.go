// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package testutil

import "github.com/beevik/etree"

// Dependency is one dependency record of a Module.
type Dependency struct {
	UUID string
	Name string
}

// Module describes a meta.lsx document to render.
type Module struct {
	UUID         string
	Name         string
	Folder       string
	Version      string
	Description  string
	Dependencies []Dependency
	// LegacyVersion writes the version into "Version" instead of "Version64".
	LegacyVersion bool
}

// MetaLSX renders m as a meta.lsx document.
func MetaLSX(m Module) string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	save := doc.CreateElement("save")
	ver := save.CreateElement("version")
	ver.CreateAttr("major", "4")
	ver.CreateAttr("minor", "7")
	ver.CreateAttr("revision", "1")
	ver.CreateAttr("build", "3")

	region := save.CreateElement("region")
	region.CreateAttr("id", "Config")
	root := node(region, "root")
	children := root.CreateElement("children")

	deps := node(children, "Dependencies")
	if len(m.Dependencies) > 0 {
		depChildren := deps.CreateElement("children")
		for _, d := range m.Dependencies {
			short := node(depChildren, "ModuleShortDesc")
			attr(short, "Folder", "LSString", d.Name)
			attr(short, "MD5", "LSString", "")
			attr(short, "Name", "LSString", d.Name)
			attr(short, "UUID", "FixedString", d.UUID)
			attr(short, "Version64", "int64", "36028797018963968")
		}
	}

	info := node(children, "ModuleInfo")
	attr(info, "Author", "LSString", "tester")
	attr(info, "CharacterCreationLevelName", "FixedString", "")
	attr(info, "Description", "LSString", m.Description)
	attr(info, "Folder", "LSString", m.Folder)
	attr(info, "Name", "LSString", m.Name)
	if m.UUID != "" {
		attr(info, "UUID", "FixedString", m.UUID)
	}
	if m.LegacyVersion {
		attr(info, "Version", "int32", m.Version)
	} else {
		attr(info, "Version64", "int64", m.Version)
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		panic(err)
	}

	return out
}

func node(parent *etree.Element, id string) *etree.Element {
	e := parent.CreateElement("node")
	e.CreateAttr("id", id)
	return e
}

func attr(parent *etree.Element, id, typ, value string) {
	e := parent.CreateElement("attribute")
	e.CreateAttr("id", id)
	e.CreateAttr("type", typ)
	e.CreateAttr("value", value)
}
