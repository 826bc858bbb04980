package generator

import (
	"fmt"
	"strings"

	"github.com/uiabridge/stubgen/internal/errors"
	"github.com/uiabridge/stubgen/internal/models"
	"github.com/uiabridge/stubgen/internal/registry"
	"github.com/uiabridge/stubgen/internal/utils"
)

// Generator synthesizes wrapper classes from interface descriptions. The
// registries are read-only lookup tables shared across all file pairs of a
// run; the only mutable state is the unknown-type counter for the summary.
type Generator struct {
	types        *registry.TypeRegistry
	sanitizers   *registry.SanitizerRegistry
	diagnostics  *utils.DiagnosticSystem
	unknownTypes int
}

// New creates a generator with the built-in registries
func New(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		types:       registry.NewTypeRegistry(),
		sanitizers:  registry.NewSanitizerRegistry(),
		diagnostics: diagnostics,
	}
}

// UnknownTypeCount returns how many arguments were generated without
// validation because their type had no registered constraint
func (g *Generator) UnknownTypeCount() int {
	return g.unknownTypes
}

// SynthesizeClass assembles one generated class from an interface
// description, methods in input order. Two source methods mapping onto the
// same wrapper name is a fatal collision for the file pair.
func (g *Generator) SynthesizeClass(desc *models.InterfaceDescription) (*models.GeneratedClass, error) {
	seen := make(map[string]string, len(desc.Methods))
	methods := make([]models.GeneratedMethod, 0, len(desc.Methods))
	for _, m := range desc.Methods {
		method := g.SynthesizeMethod(desc.Name, m)
		if prev, exists := seen[method.WrapperName]; exists {
			return nil, errors.NewCollisionError(desc.Name, method.WrapperName, prev, m.Name)
		}
		seen[method.WrapperName] = m.Name
		methods = append(methods, method)
	}
	return &models.GeneratedClass{Name: desc.Name, Methods: methods}, nil
}

// SynthesizeMethod produces one wrapper method: guards first, in argument
// order, then the descriptor entries. The descriptor's method name and
// per-argument type strings are the original declared ones; canonicalization
// affects constraint and sanitizer selection only.
func (g *Generator) SynthesizeMethod(className string, m models.MethodDescription) models.GeneratedMethod {
	method := models.GeneratedMethod{
		WrapperName: ToWrapperName(m.Name),
		SourceName:  m.Name,
		Static:      m.Static,
		Comment:     m.Comment,
		Params:      make([]string, 0, len(m.Args)),
		Args:        make([]models.DescriptorArg, 0, len(m.Args)),
	}

	for _, arg := range m.Args {
		method.Params = append(method.Params, arg.Name)
		canonical := registry.CanonicalType(arg.Type)

		if spec, ok := g.types.Lookup(canonical); ok {
			for _, check := range spec.Checks {
				method.Guards = append(method.Guards, guardFor(className, m.Name, arg.Name, check))
			}
		} else {
			g.unknownTypes++
			g.diagnostics.Warn("no validation for %s.%s argument '%s': unregistered type %s",
				className, m.Name, arg.Name, arg.Type)
		}

		valueExpr := arg.Name
		if fn, ok := g.sanitizers.Lookup(canonical); ok {
			valueExpr = fmt.Sprintf("%s(%s)", fn, arg.Name)
		}
		method.Args = append(method.Args, models.DescriptorArg{
			Type:      arg.Type,
			ValueExpr: valueExpr,
		})
	}

	// Return values cross the bridge unchecked, but an unregistered return
	// type is surfaced the same way an unregistered argument type is.
	if m.ReturnType != "" && m.ReturnType != "void" && !g.types.Has(registry.CanonicalType(m.ReturnType)) {
		g.diagnostics.Warn("no validation for %s.%s: unregistered return type %s",
			className, m.Name, m.ReturnType)
	}

	return method
}

// guardFor renders one constraint check into a guard statement over the raw
// argument value. Guards throw inside the generated wrapper when violated.
func guardFor(className, methodName, argName string, check registry.ConstraintCheck) models.GuardStatement {
	prefix := fmt.Sprintf("%s.%s: ", className, methodName)

	switch check.Kind {
	case registry.CheckNumber:
		return models.GuardStatement{
			Condition: fmt.Sprintf("typeof %s === 'number'", argName),
			Message:   prefix + fmt.Sprintf("expected '%s' to be a number", argName),
		}
	case registry.CheckBoolean:
		return models.GuardStatement{
			Condition: fmt.Sprintf("typeof %s === 'boolean'", argName),
			Message:   prefix + fmt.Sprintf("expected '%s' to be a boolean", argName),
		}
	case registry.CheckString:
		return models.GuardStatement{
			Condition: fmt.Sprintf("typeof %s === 'string'", argName),
			Message:   prefix + fmt.Sprintf("expected '%s' to be a string", argName),
		}
	case registry.CheckObject:
		return models.GuardStatement{
			Condition: fmt.Sprintf("typeof %s === 'object' && %s !== null", argName, argName),
			Message:   prefix + fmt.Sprintf("expected '%s' to be an object", argName),
		}
	case registry.CheckNumericField:
		return models.GuardStatement{
			Condition: fmt.Sprintf("typeof %s.%s === 'number'", argName, check.Field),
			Message:   prefix + fmt.Sprintf("expected '%s.%s' to be a number", argName, check.Field),
		}
	case registry.CheckEnumMember:
		quoted := make([]string, len(check.Allowed))
		for i, token := range check.Allowed {
			quoted[i] = "'" + token + "'"
		}
		return models.GuardStatement{
			Condition: fmt.Sprintf("[%s].indexOf(%s) !== -1", strings.Join(quoted, ", "), argName),
			Message: prefix + fmt.Sprintf("expected '%s' to be one of %s",
				argName, strings.Join(check.Allowed, ", ")),
		}
	default:
		// Unreachable with the built-in registry; keep generation total.
		return models.GuardStatement{
			Condition: "true",
			Message:   prefix + fmt.Sprintf("unchecked argument '%s'", argName),
		}
	}
}
