package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/oaserrors"
)

func TestRoute_AllMethods(t *testing.T) {
	b := New()
	routes := []*Route{
		b.Get("/r"), b.Put("/r"), b.Post("/r"), b.Delete("/r"),
		b.Options("/r"), b.Head("/r"), b.Patch("/r"), b.Route("TRACE", "/r"),
	}
	for _, r := range routes {
		require.NoError(t, r.Err())
	}

	doc := mustDocument(t, b)
	item, _ := doc.Paths.Get("/r")
	var methods []string
	for m := range item.Operations {
		methods = append(methods, m)
	}
	assert.Equal(t, oas.Methods, methods)
}

func TestRoute_InvalidMethod(t *testing.T) {
	b := New()
	r := b.Route("CONNECT", "/tunnel").Summary("ignored")

	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), oaserrors.ErrConfig))
	assert.Contains(t, r.Err().Error(), "unsupported HTTP method: CONNECT")
	assert.Equal(t, "ignored", r.Operation().Summary, "calls on a detached route still succeed")

	_, err := b.Document()
	require.Error(t, err)
	assert.Equal(t, 0, b.paths.Len())
}

func TestRoute_ReRegistrationMerges(t *testing.T) {
	b := New()
	first := b.Get("/users/{id:42}").Summary("Get user")
	second := b.Get("/users/{id:7}").Res(200, "{id:i,name:s}")
	third := b.Route(" get ", "/users/{id}").Tag("users")

	assert.Same(t, first.Operation(), second.Operation())
	assert.Same(t, first.Operation(), third.Operation())
	assert.Equal(t, "/users/{id}", third.Path())
	assert.Equal(t, "get", third.Method())

	doc := mustDocument(t, b)
	assert.Equal(t, []string{"/users/{id}"}, doc.Paths.Keys())
	item, _ := doc.Paths.Get("/users/{id}")
	op := item.Get
	assert.Equal(t, "Get user", op.Summary)
	assert.Equal(t, []string{"users"}, op.Tags)
	assert.True(t, op.Responses.Has("200"))

	// path parameters come from the first registration only
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "id", op.Parameters[0].Name)
	assert.Equal(t, oas.ParamInPath, op.Parameters[0].In)
	assert.True(t, op.Parameters[0].Required)
	assert.Equal(t, "42", op.Parameters[0].Example())
}

func TestRoute_Req(t *testing.T) {
	tests := []struct {
		name   string
		flat   string
		assert func(t *testing.T, s *oas.Schema)
	}{
		{
			name: "flat schema",
			flat: "{name:s,age:?i}",
			assert: func(t *testing.T, s *oas.Schema) {
				assert.Equal(t, oas.TypeObject, s.Type)
				assert.Equal(t, []string{"name", "age"}, s.Properties.Keys())
			},
		},
		{
			name: "full reference",
			flat: "#/components/schemas/User",
			assert: func(t *testing.T, s *oas.Schema) {
				assert.Equal(t, "#/components/schemas/User", s.Ref)
			},
		},
		{
			name: "shorthand reference",
			flat: " #User ",
			assert: func(t *testing.T, s *oas.Schema) {
				assert.Equal(t, "#/components/schemas/User", s.Ref)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			r := b.Post("/users").Req(tt.flat)
			require.NoError(t, r.Err())

			body := r.Operation().RequestBody
			require.NotNil(t, body)
			require.Contains(t, body.Content, oas.MediaTypeJSON)
			tt.assert(t, body.Content[oas.MediaTypeJSON].Schema)
		})
	}
}

func TestRoute_Req_Malformed(t *testing.T) {
	b := New()
	r := b.Post("/users").Req("{name:s}")
	r.Req("{name:s")

	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), oaserrors.ErrMalformedSchema))

	// the earlier body is untouched
	schema := r.Operation().RequestBody.Content[oas.MediaTypeJSON].Schema
	assert.Equal(t, []string{"name"}, schema.Properties.Keys())
}

func TestRoute_Res(t *testing.T) {
	b := New()
	r := b.Get("/things").
		Res(200, "[{id:i}]").
		Res(204, "").
		Res(202, "s").
		Res(201, "#Thing")
	require.NoError(t, r.Err())

	op := r.Operation()
	assert.Equal(t, []string{"200", "204", "202", "201"}, op.Responses.Keys())

	ok, _ := op.Responses.Get("200")
	require.Contains(t, ok.Content, oas.MediaTypeJSON)
	assert.Equal(t, oas.TypeArray, ok.Content[oas.MediaTypeJSON].Schema.Type)

	noContent, _ := op.Responses.Get("204")
	assert.Nil(t, noContent.Content)

	text, _ := op.Responses.Get("202")
	require.Contains(t, text.Content, oas.MediaTypeText)
	assert.NotContains(t, text.Content, oas.MediaTypeJSON)

	ref, _ := op.Responses.Get("201")
	assert.Equal(t, oas.SchemaRef("Thing"), ref.Content[oas.MediaTypeJSON].Schema.Ref)

	// setting a code again replaces the response in place
	r.Res(200, "")
	assert.Equal(t, []string{"200", "204", "202", "201"}, op.Responses.Keys())
	ok, _ = op.Responses.Get("200")
	assert.Nil(t, ok.Content)
}

func TestRoute_Res_Errors(t *testing.T) {
	b := New()
	r := b.Get("/x").Res(99, "").Res(600, "s").Res(200, "{a:[i}")

	var errs BuilderErrors
	require.True(t, errors.As(r.Err(), &errs))
	require.Len(t, errs, 3)
	assert.Equal(t, "builder: response GET /x field 99: status code out of range", errs[0].Error())
	assert.Equal(t, "600", errs[1].Field)
	assert.True(t, errors.Is(errs[2], oaserrors.ErrMalformedSchema))
	assert.Equal(t, 0, r.Operation().Responses.Len())
}

func TestRoute_Parameters(t *testing.T) {
	b := New()
	r := b.Get("/search/{scope}").
		Query("q:s", "limit:?i:10,offset:?i").
		Header("X-Request-Id:?s").
		Cookie("session:s")
	require.NoError(t, r.Err())

	params := r.Operation().Parameters
	require.Len(t, params, 6)

	type summary struct {
		name, in string
		required bool
	}
	got := make([]summary, len(params))
	for i, p := range params {
		got[i] = summary{p.Name, p.In, p.Required}
	}
	assert.Equal(t, []summary{
		{"scope", oas.ParamInPath, true},
		{"q", oas.ParamInQuery, true},
		{"limit", oas.ParamInQuery, false},
		{"offset", oas.ParamInQuery, false},
		{"X-Request-Id", oas.ParamInHeader, false},
		{"session", oas.ParamInCookie, true},
	}, got)

	assert.Equal(t, int64(10), params[2].Example())
	assert.Equal(t, oas.TypeInteger, params[2].Schema.Type)
	assert.False(t, params[2].Schema.Required, "the flag moves to the parameter")
}

func TestRoute_Parameters_ReplaceSameNameAndLocation(t *testing.T) {
	b := New()
	r := b.Get("/items").Query("page:?i", "sort:?s").Header("page:s")
	r.Query("page:i:1")

	params := r.Operation().Parameters
	require.Len(t, params, 3)
	assert.Equal(t, "page", params[0].Name)
	assert.Equal(t, oas.ParamInQuery, params[0].In)
	assert.True(t, params[0].Required)
	assert.Equal(t, int64(1), params[0].Example())
	assert.Equal(t, oas.ParamInHeader, params[2].In)
}

func TestRoute_Parameters_AllOrNothing(t *testing.T) {
	b := New()
	r := b.Get("/items").Query("a:s", "b:{c:i", "d:s")

	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), oaserrors.ErrMalformedSchema))
	assert.Empty(t, r.Operation().Parameters)
}

func TestRoute_Metadata(t *testing.T) {
	b := New()
	r := b.Get("/pets").
		Tag("animals").
		Tag("pets").
		Summary("List pets").
		Desc("Returns every pet").
		Security("bearerAuth").
		Deprecate()

	op := r.Operation()
	assert.Equal(t, []string{"pets"}, op.Tags)
	assert.Equal(t, "List pets", op.Summary)
	assert.Equal(t, "Returns every pet", op.Description)
	assert.Equal(t, []oas.SecurityRequirement{{"bearerAuth": {}}}, op.Security)
	assert.True(t, op.Deprecated)
}

func TestRoute_OperationID(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		b := New(WithOperationIDs(true))
		assert.Equal(t, "getUsers", b.Get("/users").Operation().OperationID)
		assert.Equal(t, "getUsersById", b.Get("/users/{id:1}").Operation().OperationID)
		assert.Equal(t, "getUsersById", b.Get("/users/{id}").Operation().OperationID, "same route")

		// a custom ID that collides with a later generated one
		b.Post("/things").OperationID("getItems")
		assert.Equal(t, "getItems2", b.Get("/items").Operation().OperationID)
	})

	t.Run("disabled by default", func(t *testing.T) {
		b := New()
		assert.Empty(t, b.Get("/users").Operation().OperationID)
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		b := New()
		b.Get("/pets").OperationID("listPets")
		r := b.Get("/v2/pets").OperationID("listPets")

		require.Error(t, r.Err())
		var be *BuilderError
		require.True(t, errors.As(r.Err(), &be))
		assert.Equal(t, "listPets", be.OperationID)
		require.NotNil(t, be.FirstOccurrence)
		assert.Equal(t, "GET /pets", be.FirstOccurrence.String())
		assert.Empty(t, r.Operation().OperationID)
	})

	t.Run("rename frees the old id", func(t *testing.T) {
		b := New()
		b.Get("/pets").OperationID("a").OperationID("b")
		r := b.Get("/other").OperationID("a")
		require.NoError(t, r.Err())

		// setting the same id again is a no-op
		require.NoError(t, r.OperationID("a").Err())
	})
}

func TestRoute_Remove(t *testing.T) {
	b := New()
	get := b.Get("/pets").OperationID("listPets")
	b.Post("/pets")
	b.Get("/owners").Remove()

	get.Remove()
	doc := mustDocument(t, b)
	assert.Equal(t, []string{"/pets"}, doc.Paths.Keys())
	item, _ := doc.Paths.Get("/pets")
	assert.Nil(t, item.Get)
	assert.NotNil(t, item.Post)

	// removing twice is harmless and the id can be reused
	get.Remove()
	require.NoError(t, b.Get("/pets").OperationID("listPets").Err())
}

func TestRoute_Config(t *testing.T) {
	b := New()
	_, err := b.RegisterSchema("User", "{id:i,name:s}")
	require.NoError(t, err)

	r := b.Put("/users/{id}", RouteConfig{
		Tag:         "users",
		Summary:     "Replace user",
		Desc:        "Replaces every field",
		Req:         "#User",
		Query:       []string{"notify:?b"},
		Header:      []string{"If-Match:s"},
		Cookie:      []string{"session:?s"},
		Security:    "bearerAuth",
		Deprecated:  true,
		OperationID: "replaceUser",
		Responses:   map[int]string{404: "{error:s}", 200: "#User", 204: ""},
	})
	require.NoError(t, r.Err())

	op := r.Operation()
	assert.Equal(t, []string{"users"}, op.Tags)
	assert.Equal(t, "Replace user", op.Summary)
	assert.Equal(t, "Replaces every field", op.Description)
	assert.Equal(t, oas.SchemaRef("User"), op.RequestBody.Content[oas.MediaTypeJSON].Schema.Ref)
	assert.Equal(t, []string{"200", "204", "404"}, op.Responses.Keys(), "responses apply in ascending code order")
	assert.True(t, op.Deprecated)
	assert.Equal(t, "replaceUser", op.OperationID)
	assert.Equal(t, []oas.SecurityRequirement{{"bearerAuth": {}}}, op.Security)

	var names []string
	for _, p := range op.Parameters {
		names = append(names, p.In+":"+p.Name)
	}
	assert.Equal(t, []string{"path:id", "query:notify", "header:If-Match", "cookie:session"}, names)

	// Apply merges into the existing operation
	r.Apply(RouteConfig{Summary: "Updated"})
	assert.Equal(t, "Updated", op.Summary)
	assert.Equal(t, "Replaces every field", op.Description)
}
