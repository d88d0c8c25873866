// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modinfo

import (
	"bytes"

	"github.com/beevik/etree"
)

// Attribute ids read from the ModuleInfo node.
const (
	attrName        = "Name"
	attrUUID        = "UUID"
	attrVersion     = "Version"
	attrVersion64   = "Version64"
	attrDescription = "Description"
	attrFolder      = "Folder"
)

var (
	moduleInfoPath   = mustCompilePath("//*[@id='Config']/*[@id='root']/children/*[@id='ModuleInfo']")
	dependenciesPath = mustCompilePath("//*[@id='Dependencies']/children")
	moduleInfoMarker = []byte("ModuleInfo")
)

// Parse builds a descriptor from a meta.lsx fragment.
// It returns false when the fragment is malformed, has no ModuleInfo node,
// or names an empty, base or vanilla module UUID.
func Parse(xmlText []byte) (*Descriptor, bool) {
	doc, info := findModuleInfo(xmlText)
	if info == nil {
		return nil, false
	}

	d := &Descriptor{raw: string(xmlText)}
	for _, a := range info.SelectElements("attribute") {
		value := a.SelectAttrValue("value", "")
		switch a.SelectAttrValue("id", "") {
		case attrName:
			d.Name = value
		case attrUUID:
			d.UUID = value
		case attrVersion, attrVersion64:
			d.Version = value
		case attrDescription:
			d.Description = value
		case attrFolder:
			d.Folder = value
		}
	}

	if !validUUID(d.UUID) || IsVanilla(d.UUID) {
		return nil, false
	}

	d.Dependencies = parseDependencies(doc)
	return d, true
}

// ParseString is Parse for string input.
func ParseString(xmlText string) (*Descriptor, bool) {
	return Parse([]byte(xmlText))
}

// IsValid reports whether xmlText carries a ModuleInfo node whose UUID is
// non-empty and not BaseUUID.
func IsValid(xmlText []byte) bool {
	_, info := findModuleInfo(xmlText)
	if info == nil {
		return false
	}

	return validUUID(attributeValue(info, attrUUID))
}

func validUUID(uuid string) bool {
	return uuid != "" && uuid != BaseUUID
}

// findModuleInfo returns the parsed document and its ModuleInfo node, or nil.
func findModuleInfo(xmlText []byte) (*etree.Document, *etree.Element) {
	if !bytes.Contains(xmlText, moduleInfoMarker) {
		return nil, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlText); err != nil {
		return nil, nil
	}

	info := doc.FindElementPath(moduleInfoPath)
	if info == nil {
		return nil, nil
	}

	return doc, info
}

func parseDependencies(doc *etree.Document) []Dependency {
	children := doc.FindElementPath(dependenciesPath)
	if children == nil {
		return nil
	}

	var deps []Dependency
	for _, child := range children.ChildElements() {
		uuid := attributeValue(child, attrUUID)
		if uuid == "" || IsVanilla(uuid) {
			continue
		}

		deps = append(deps, Dependency{UUID: uuid, Name: attributeValue(child, attrName)})
	}

	return deps
}

// attributeValue returns the value of the last attribute child with id.
func attributeValue(e *etree.Element, id string) string {
	var value string
	for _, a := range e.SelectElements("attribute") {
		if a.SelectAttrValue("id", "") == id {
			value = a.SelectAttrValue("value", "")
		}
	}

	return value
}

func mustCompilePath(path string) etree.Path {
	p, err := etree.CompilePath(path)
	if err != nil {
		panic(err)
	}

	return p
}
