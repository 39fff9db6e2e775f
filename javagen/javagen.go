// Package javagen renders the parsed ErrorId records as the Java interface IServerMessageCode used by p4java:
// one documented `int` constant per record.
package javagen

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/p4ic4idea/p4errgen/errorid"
	"github.com/p4ic4idea/p4errgen/msgcodes"
	"github.com/pkg/errors"
)

// Options for the Emitter. Start from DefaultOptions and change what is needed.
type Options struct {
	// Package of the generated interface.
	Package string

	// Interface name.
	Interface string

	// ImportPackage holds the MessageSubsystemCode, MessageSeverityCode and MessageGenericCode classes.
	ImportPackage string

	// Generator is the name of the program mentioned in the "DO NOT EDIT" warning.
	Generator string

	// Symbols used to qualify the category tokens. If nil, msgcodes.DefaultSymbols() is used.
	Symbols *msgcodes.Symbols

	// Naming style for the constant names.
	Naming NamingStyle

	// EscapeText replaces "*/" in the message texts, so they can't terminate the Javadoc comment.
	// By default texts are copied verbatim.
	EscapeText bool
}

// DefaultOptions generates com.perforce.p4java.server.IServerMessageCode.
func DefaultOptions() Options {
	return Options{
		Package:       "com.perforce.p4java.server",
		Interface:     "IServerMessageCode",
		ImportPackage: "com.perforce.p4java.exception",
		Generator:     "p4errgen",
		Naming:        NamingRuns,
	}
}

var reJavaQualifiedName = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)

// Emitter writes the Java source for a list of records.
type Emitter struct {
	opts Options
	tmpl *template.Template
}

// New creates an Emitter, after validating the options.
func New(opts Options) (*Emitter, error) {
	if !reJavaQualifiedName.MatchString(opts.Package) {
		return nil, errors.Errorf("invalid Java package name %q", opts.Package)
	}
	if !reJavaQualifiedName.MatchString(opts.ImportPackage) {
		return nil, errors.Errorf("invalid Java package name %q for imports", opts.ImportPackage)
	}
	if !reJavaQualifiedName.MatchString(opts.Interface) || strings.Contains(opts.Interface, ".") {
		return nil, errors.Errorf("invalid Java interface name %q", opts.Interface)
	}
	if !opts.Naming.IsANamingStyle() {
		return nil, errors.Errorf("invalid naming style %s", opts.Naming)
	}
	if opts.Symbols == nil {
		opts.Symbols = msgcodes.DefaultSymbols()
	}
	tmpl, err := template.New("java").Parse(javaTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Java template")
	}
	return &Emitter{opts: opts, tmpl: tmpl}, nil
}

// Options returns the options used by the Emitter.
func (e *Emitter) Options() Options {
	return e.opts
}

// constant holds the template values for one record.
type constant struct {
	Name, Ident, Code, ArgCount, Text        string
	SeverityLink, SubsystemLink, GenericLink string
}

type templateData struct {
	Package, Interface, Generator string
	Imports                       []string
	Constants                     []constant
}

// Emit writes the Java source with one constant per record, in the order given.
func (e *Emitter) Emit(w io.Writer, records []errorid.Record) error {
	data := templateData{
		Package:   e.opts.Package,
		Interface: e.opts.Interface,
		Generator: e.opts.Generator,
		Constants: make([]constant, 0, len(records)),
	}
	for _, class := range []msgcodes.TokenClass{msgcodes.ClassGeneric, msgcodes.ClassSubsystem, msgcodes.ClassSeverity} {
		data.Imports = append(data.Imports, e.opts.ImportPackage+"."+class.JavaClass())
	}
	for _, record := range records {
		text := record.Text
		if e.opts.EscapeText {
			text = EscapeJavadoc(text)
		}
		data.Constants = append(data.Constants, constant{
			Name:          record.Name,
			Ident:         ConstantName(record.Name, e.opts.Naming),
			Code:          strconv.Itoa(record.Code),
			ArgCount:      record.ArgCount,
			Text:          text,
			SeverityLink:  JavadocLink(e.opts.Symbols.Qualify(record.Severity)),
			SubsystemLink: JavadocLink(e.opts.Symbols.Qualify(record.Subsystem)),
			GenericLink:   JavadocLink(e.opts.Symbols.Qualify(record.Generic)),
		})
	}
	if err := e.tmpl.Execute(w, data); err != nil {
		return errors.Wrapf(err, "failed to write Java interface %s.%s", e.opts.Package, e.opts.Interface)
	}
	return nil
}

// JavadocLink returns the Javadoc cross-reference for a qualified name: the last "." becomes a "#",
// so "MessageSeverityCode.E_FAILED" becomes "{@link MessageSeverityCode#E_FAILED}".
func JavadocLink(qualified string) string {
	if idx := strings.LastIndex(qualified, "."); idx >= 0 {
		qualified = qualified[:idx] + "#" + qualified[idx+1:]
	}
	return "{@link " + qualified + "}"
}

// EscapeJavadoc makes text safe to include in a Javadoc comment: "*/" is replaced by "*&#47;".
func EscapeJavadoc(text string) string {
	return strings.ReplaceAll(text, "*/", "*&#47;")
}

const javaTemplate = `/*
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package {{.Package}};
{{range .Imports}}
import {{.}};{{end}}

/**
 * Error messages loaded from the Perforce C client source.
 * <p>
 * DO NOT EDIT.
 * This file is generated by {{.Generator}}.
 */
public interface {{.Interface}} {
{{- range .Constants}}

    /**
     * {{.Name}}
     * Severity {{.SeverityLink}}
     * Subsystem code {{.SubsystemLink}}
     * Generic code {{.GenericLink}},
     * argument count {{.ArgCount}},
     * Text: "{{.Text}}"
     */
    int {{.Ident}} = {{.Code}};
{{- end}}
}
`
