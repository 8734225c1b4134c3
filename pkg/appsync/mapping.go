package appsync

import (
	"github.com/spf13/afero"
)

// TemplatePrefix returns name when set, otherwise "<typeName>.<field>".
func TemplatePrefix(name, typeName, field string) string {
	if name != "" {
		return name
	}
	return typeName + "." + field
}

// RequestTemplateName is the canonical request template name for a prefix.
func RequestTemplateName(prefix string) string {
	return prefix + ".request.vtl"
}

// ResponseTemplateName is the canonical response template name for a prefix.
func ResponseTemplateName(prefix string) string {
	return prefix + ".response.vtl"
}

// templateSource is the part of a resolver or pipeline function that
// determines its mapping templates.
type templateSource struct {
	prefix        string
	request       string
	response      string
	substitutions Substitutions
}

func (r ResolverSpec) templateSource() templateSource {
	return templateSource{
		prefix:        r.Prefix(),
		request:       r.Request,
		response:      r.Response,
		substitutions: r.Substitutions,
	}
}

func (f FunctionSpec) templateSource() templateSource {
	return templateSource{
		prefix:        f.Prefix(),
		request:       f.Request,
		response:      f.Response,
		substitutions: f.Substitutions,
	}
}

// ResolveMappingTemplates loads the request and response template of every
// resolver followed by every pipeline function. Item i yields entries 2i
// (request) and 2i+1 (response), both named canonically whatever file they
// were read from. Each item's substitutions are layered over cfg's globals.
func ResolveMappingTemplates(fsys afero.Fs, basePath string, cfg *RawConfig) ([]TemplateFile, error) {
	sources := make([]templateSource, 0, len(cfg.MappingTemplates)+len(cfg.FunctionConfigurations))
	for _, r := range cfg.MappingTemplates {
		sources = append(sources, r.templateSource())
	}
	for _, f := range cfg.FunctionConfigurations {
		sources = append(sources, f.templateSource())
	}

	templates := make([]TemplateFile, 0, 2*len(sources))
	for _, src := range sources {
		requestName := RequestTemplateName(src.prefix)
		responseName := ResponseTemplateName(src.prefix)

		requestFile := src.request
		if requestFile == "" {
			requestFile = requestName
		}
		responseFile := src.response
		if responseFile == "" {
			responseFile = responseName
		}

		subs := cfg.Substitutions.Merge(src.substitutions)

		request, err := loadMappingTemplate(fsys, basePath, requestFile, requestName, subs)
		if err != nil {
			return nil, err
		}
		response, err := loadMappingTemplate(fsys, basePath, responseFile, responseName, subs)
		if err != nil {
			return nil, err
		}
		templates = append(templates, request, response)
	}
	return templates, nil
}

func loadMappingTemplate(fsys afero.Fs, basePath, file, name string, subs Substitutions) (TemplateFile, error) {
	tmpl, err := LoadTemplate(fsys, basePath, file, name)
	if err != nil {
		return TemplateFile{}, err
	}
	tmpl.Content = Substitute(tmpl.Content, subs)
	return tmpl, nil
}
