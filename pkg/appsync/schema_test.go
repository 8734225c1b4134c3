package appsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const usersSDL = `
schema {
	query: Query
}

type Query {
	getUser(id: ID!): User @aws_api_key
}

type User {
	id: ID!
	name: String
}

enum Role {
	ADMIN
}
`

const postsSDL = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	getPost(id: ID!): Post
	getUser(id: ID!): User
}

type Mutation {
	createPost(title: String!): Post
}

type Post {
	id: ID!
	author: User
	createdAt: AWSDateTime
}

type User {
	email: AWSEmail
}

enum Role {
	USER
	ADMIN
}
`

func parseMerged(t *testing.T, sdl string) *ast.SchemaDocument {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "merged", Input: sdl})
	require.NoError(t, err)
	return doc
}

func fieldNames(def *ast.Definition) []string {
	names := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestMergeSchemas_SingleDocumentIsVerbatim(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{"schema.graphql": usersSDL})

	schema, err := MergeSchemas(fsys, testServicePath, []string{"schema.graphql"})
	require.NoError(t, err)
	assert.Equal(t, "schema.graphql", schema.Path)
	assert.Equal(t, usersSDL, schema.Content)
}

func TestMergeSchemas_MultipleDocuments(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{
		"schema/users.graphql": usersSDL,
		"schema/posts.graphql": postsSDL,
	})

	schema, err := MergeSchemas(fsys, testServicePath, []string{"schema/users.graphql", "schema/posts.graphql"})
	require.NoError(t, err)
	assert.Equal(t, "schema/users.graphql", schema.Path)

	doc := parseMerged(t, schema.Content)

	query := doc.Definitions.ForName("Query")
	require.NotNil(t, query)
	assert.Equal(t, []string{"getUser", "getPost"}, fieldNames(query))
	assert.NotNil(t, query.Fields.ForName("getUser").Directives.ForName("aws_api_key"))

	user := doc.Definitions.ForName("User")
	require.NotNil(t, user)
	assert.Equal(t, []string{"id", "name", "email"}, fieldNames(user))

	role := doc.Definitions.ForName("Role")
	require.NotNil(t, role)
	require.Len(t, role.EnumValues, 2)
	assert.Equal(t, "ADMIN", role.EnumValues[0].Name)
	assert.Equal(t, "USER", role.EnumValues[1].Name)

	assert.NotNil(t, doc.Definitions.ForName("Post"))
	assert.NotNil(t, doc.Definitions.ForName("Mutation"))

	require.Len(t, doc.Schema, 1)
	assert.Len(t, doc.Schema[0].OperationTypes, 2)
}

func TestMergeSDL_FoldsExtensions(t *testing.T) {
	t.Parallel()

	merged, err := MergeSDL(
		TemplateFile{Path: "a.graphql", Content: "extend type Query { b: String }\ninterface Node { id: ID! }"},
		TemplateFile{Path: "b.graphql", Content: "type Query { a: String }\ntype Item implements Node { id: ID! }"},
		TemplateFile{Path: "c.graphql", Content: "extend type Item @aws_iam\nunion Result = Item"},
		TemplateFile{Path: "d.graphql", Content: "union Result = Other\ntype Other { x: Int }"},
	)
	require.NoError(t, err)

	doc := parseMerged(t, merged)
	assert.Empty(t, doc.Extensions)

	query := doc.Definitions.ForName("Query")
	require.NotNil(t, query)
	assert.ElementsMatch(t, []string{"a", "b"}, fieldNames(query))

	item := doc.Definitions.ForName("Item")
	require.NotNil(t, item)
	assert.Equal(t, []string{"Node"}, item.Interfaces)
	assert.NotNil(t, item.Directives.ForName("aws_iam"))

	result := doc.Definitions.ForName("Result")
	require.NotNil(t, result)
	assert.Equal(t, []string{"Item", "Other"}, result.Types)
}

func TestMergeSDL_Conflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
	}{
		{"field type", "type User { id: ID! }", "type User { id: String }"},
		{"kind", "type User { id: ID! }", "input User { id: ID! }"},
		{"root operation", "schema { query: Query }\ntype Query { a: Int }", "schema { query: RootQuery }\ntype RootQuery { a: Int }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := MergeSDL(TemplateFile{Path: "a", Content: tt.a}, TemplateFile{Path: "b", Content: tt.b})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaConflict)
		})
	}
}

func TestMergeSDL_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := MergeSDL(
		TemplateFile{Path: "a", Content: "type Query { a: Int }"},
		TemplateFile{Path: "b", Content: "type {"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse GraphQL schema")
}

func TestMergeSchemas_Glob(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{
		"schema/b.graphql":        "type Query { b: String }",
		"schema/a.graphql":        "type Query { a: String }",
		"schema/nested/c.graphql": "type Query { c: String }",
		"schema/readme.md":        "not a schema",
	})

	schema, err := MergeSchemas(fsys, testServicePath, []string{"schema/**/*.graphql"})
	require.NoError(t, err)
	assert.Equal(t, "schema/a.graphql", schema.Path)

	doc := parseMerged(t, schema.Content)
	assert.Equal(t, []string{"a", "b", "c"}, fieldNames(doc.Definitions.ForName("Query")))
}

func TestMergeSchemas_Errors(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{"schema.graphql": "type Query { a: Int }"})

	_, err := MergeSchemas(fsys, testServicePath, nil)
	assert.ErrorIs(t, err, ErrSchemaRequired)

	_, err = MergeSchemas(fsys, testServicePath, []string{"schema.graphql", "missing.graphql"})
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = MergeSchemas(fsys, testServicePath, []string{"schemas/*.graphql"})
	assert.ErrorIs(t, err, ErrFileNotFound)
}
