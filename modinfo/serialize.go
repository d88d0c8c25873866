// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modinfo

import (
	"fmt"

	"github.com/beevik/etree"
)

// Node ids of the mod list and load order fragments.
const (
	pluginNodeID = "ModuleShortDesc"
	orderNodeID  = "Module"
)

// AppendPlugin adds a ModuleShortDesc node for d to parent and returns it.
func (d *Descriptor) AppendPlugin(parent *etree.Element) *etree.Element {
	n := appendNode(parent, pluginNodeID)
	appendAttribute(n, attrFolder, "LSString", d.Folder)
	appendAttribute(n, "MD5", "LSString", "")
	appendAttribute(n, attrName, "LSString", d.Name)
	appendAttribute(n, attrUUID, "FixedString", d.UUID)
	appendAttribute(n, attrVersion64, "int64", d.Version)

	return n
}

// AppendOrder adds a load order Module node for d to parent and returns it.
func (d *Descriptor) AppendOrder(parent *etree.Element) *etree.Element {
	n := appendNode(parent, orderNodeID)
	appendAttribute(n, attrUUID, "FixedString", d.UUID)

	return n
}

// PluginXML renders the mod list fragment for d.
func (d *Descriptor) PluginXML() (string, error) {
	return renderFragment(d.AppendPlugin)
}

// OrderXML renders the load order fragment for d.
func (d *Descriptor) OrderXML() (string, error) {
	return renderFragment(d.AppendOrder)
}

func renderFragment(build func(*etree.Element) *etree.Element) (string, error) {
	doc := etree.NewDocument()
	build(&doc.Element)
	doc.Indent(2)

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("render fragment: %w", err)
	}

	return out, nil
}

func appendNode(parent *etree.Element, id string) *etree.Element {
	n := parent.CreateElement("node")
	n.CreateAttr("id", id)
	return n
}

func appendAttribute(parent *etree.Element, id, typ, value string) {
	a := parent.CreateElement("attribute")
	a.CreateAttr("id", id)
	a.CreateAttr("type", typ)
	a.CreateAttr("value", value)
}
