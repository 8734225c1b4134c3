package appsync

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// MergeSchemas loads every schema path under basePath and merges them into
// one document. Paths containing glob metacharacters are expanded in lexical
// order and must match at least one file. A single document is returned as
// read; several are merged with MergeSDL. The reported path is the first
// loaded path.
func MergeSchemas(fsys afero.Fs, basePath string, paths []string) (TemplateFile, error) {
	expanded, err := expandSchemaPaths(fsys, basePath, paths)
	if err != nil {
		return TemplateFile{}, err
	}
	if len(expanded) == 0 {
		return TemplateFile{}, ErrSchemaRequired
	}

	docs := make([]TemplateFile, 0, len(expanded))
	for _, p := range expanded {
		doc, err := LoadTemplate(fsys, basePath, p, "")
		if err != nil {
			return TemplateFile{}, err
		}
		docs = append(docs, doc)
	}

	var reported string
	for _, doc := range docs {
		if doc.Path != "" {
			reported = doc.Path
			break
		}
	}

	if len(docs) == 1 {
		return TemplateFile{Path: reported, Content: docs[0].Content}, nil
	}

	content, err := MergeSDL(docs...)
	if err != nil {
		return TemplateFile{}, err
	}
	return TemplateFile{Path: reported, Content: content}, nil
}

func expandSchemaPaths(fsys afero.Fs, basePath string, paths []string) ([]string, error) {
	var expanded []string
	for _, p := range paths {
		if !strings.ContainsAny(p, "*?[{") {
			expanded = append(expanded, p)
			continue
		}

		pattern := strings.TrimPrefix(filepathToSlash(p), "./")
		matches, err := doublestar.Glob(afero.NewIOFS(afero.NewBasePathFs(fsys, basePath)), pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid schema pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: no schema matches %s", ErrFileNotFound, p)
		}
		sort.Strings(matches)
		expanded = append(expanded, matches...)
	}
	return expanded, nil
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// MergeSDL parses the given SDL documents and prints them as one. Types,
// inputs, interfaces, enums and unions sharing a name are combined; type
// extensions are folded into their base type. A field declared twice with
// different types, or a name used for two kinds of type, is ErrSchemaConflict.
func MergeSDL(docs ...TemplateFile) (string, error) {
	sources := make([]*ast.Source, 0, len(docs))
	for _, doc := range docs {
		sources = append(sources, &ast.Source{Name: doc.Path, Input: doc.Content})
	}

	parsed, err := parser.ParseSchemas(sources...)
	if err != nil {
		return "", fmt.Errorf("failed to parse GraphQL schema: %w", err)
	}

	merged, err := mergeSchemaDocument(parsed)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(merged)
	return buf.String(), nil
}

func mergeSchemaDocument(doc *ast.SchemaDocument) (*ast.SchemaDocument, error) {
	out := &ast.SchemaDocument{}

	schemaDefs := make(ast.SchemaDefinitionList, 0, len(doc.Schema)+len(doc.SchemaExtension))
	schemaDefs = append(schemaDefs, doc.Schema...)
	schemaDefs = append(schemaDefs, doc.SchemaExtension...)
	if len(schemaDefs) > 0 {
		def, err := mergeSchemaDefinitions(schemaDefs)
		if err != nil {
			return nil, err
		}
		out.Schema = ast.SchemaDefinitionList{def}
	}

	for _, d := range doc.Directives {
		if out.Directives.ForName(d.Name) == nil {
			out.Directives = append(out.Directives, d)
		}
	}

	defs := make(ast.DefinitionList, 0, len(doc.Definitions)+len(doc.Extensions))
	defs = append(defs, doc.Definitions...)
	defs = append(defs, doc.Extensions...)

	byName := make(map[string]*ast.Definition, len(defs))
	for _, def := range defs {
		existing, ok := byName[def.Name]
		if !ok {
			byName[def.Name] = def
			out.Definitions = append(out.Definitions, def)
			continue
		}
		if err := mergeDefinition(existing, def); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func mergeSchemaDefinitions(defs ast.SchemaDefinitionList) (*ast.SchemaDefinition, error) {
	merged := &ast.SchemaDefinition{}
	for _, def := range defs {
		if merged.Description == "" {
			merged.Description = def.Description
		}
		merged.Directives = mergeDirectives(merged.Directives, def.Directives)
		for _, op := range def.OperationTypes {
			var existing *ast.OperationTypeDefinition
			for _, have := range merged.OperationTypes {
				if have.Operation == op.Operation {
					existing = have
					break
				}
			}
			switch {
			case existing == nil:
				merged.OperationTypes = append(merged.OperationTypes, op)
			case existing.Type != op.Type:
				return nil, fmt.Errorf("%w: %s root type is both %s and %s",
					ErrSchemaConflict, op.Operation, existing.Type, op.Type)
			}
		}
	}
	return merged, nil
}

func mergeDefinition(dst, src *ast.Definition) error {
	if dst.Kind != src.Kind {
		return fmt.Errorf("%w: %s is declared as both %s and %s",
			ErrSchemaConflict, dst.Name, dst.Kind, src.Kind)
	}

	if dst.Description == "" {
		dst.Description = src.Description
	}
	dst.Directives = mergeDirectives(dst.Directives, src.Directives)
	dst.Interfaces = mergeNames(dst.Interfaces, src.Interfaces)
	dst.Types = mergeNames(dst.Types, src.Types)

	for _, field := range src.Fields {
		existing := dst.Fields.ForName(field.Name)
		if existing == nil {
			dst.Fields = append(dst.Fields, field)
			continue
		}
		if existing.Type.String() != field.Type.String() {
			return fmt.Errorf("%w: %s.%s is both %s and %s",
				ErrSchemaConflict, dst.Name, field.Name, existing.Type.String(), field.Type.String())
		}
		existing.Directives = mergeDirectives(existing.Directives, field.Directives)
	}

	for _, value := range src.EnumValues {
		if dst.EnumValues.ForName(value.Name) == nil {
			dst.EnumValues = append(dst.EnumValues, value)
		}
	}
	return nil
}

func mergeDirectives(dst, src ast.DirectiveList) ast.DirectiveList {
	for _, d := range src {
		if dst.ForName(d.Name) == nil {
			dst = append(dst, d)
		}
	}
	return dst
}

func mergeNames(dst, src []string) []string {
	for _, name := range src {
		found := false
		for _, have := range dst {
			if have == name {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, name)
		}
	}
	return dst
}
