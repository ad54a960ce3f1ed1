package pokeapi

import "strconv"

// PokemonName is a validated Pokemon name: non-empty, lowercase ASCII
// letters, digits and '-'. The zero value is not a valid name; obtain one
// with NewPokemonName.
type PokemonName struct {
	name string
}

// NewPokemonName validates raw. It does not trim or case-fold.
func NewPokemonName(raw string) (PokemonName, error) {
	if err := validateName("pokemon_name", raw); err != nil {
		return PokemonName{}, err
	}
	return PokemonName{name: raw}, nil
}

// String returns the name exactly as given
func (n PokemonName) String() string { return n.name }

// GenerationName is a validated Generation name. It follows the same rules
// as PokemonName but is a distinct type so the two cannot be mixed up.
type GenerationName struct {
	name string
}

// NewGenerationName validates raw. It does not trim or case-fold.
func NewGenerationName(raw string) (GenerationName, error) {
	if err := validateName("generation_name", raw); err != nil {
		return GenerationName{}, err
	}
	return GenerationName{name: raw}, nil
}

// String returns the name exactly as given
func (n GenerationName) String() string { return n.name }

func validateName(field, raw string) error {
	if raw == "" {
		return &InvalidArgumentError{Field: field, Reason: "cannot be empty"}
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-') {
			return &InvalidArgumentError{
				Field:  field,
				Reason: "must be lowercase ascii letters, digits, or '-'",
			}
		}
	}
	return nil
}

// resourceName is satisfied by the validated name types.
type resourceName interface {
	PokemonName | GenerationName
	String() string
}

// Ref addresses a resource either by numeric id or by validated name.
// Exactly one of the two is active.
type Ref[N resourceName] struct {
	id     uint32
	name   N
	byName bool
}

// PokemonRef addresses a Pokemon by id or name.
type PokemonRef = Ref[PokemonName]

// GenerationRef addresses a Generation by id or name.
type GenerationRef = Ref[GenerationName]

// PokemonByID references a Pokemon by id
func PokemonByID(id uint32) PokemonRef { return PokemonRef{id: id} }

// PokemonByName references a Pokemon by name
func PokemonByName(name PokemonName) PokemonRef { return PokemonRef{name: name, byName: true} }

// GenerationByID references a Generation by id
func GenerationByID(id uint32) GenerationRef { return GenerationRef{id: id} }

// GenerationByName references a Generation by name
func GenerationByName(name GenerationName) GenerationRef {
	return GenerationRef{name: name, byName: true}
}

// ID returns the id and true when the reference is by id
func (r Ref[N]) ID() (uint32, bool) {
	return r.id, !r.byName
}

// Name returns the name and true when the reference is by name
func (r Ref[N]) Name() (N, bool) {
	return r.name, r.byName
}

// IsName reports whether the reference is by name
func (r Ref[N]) IsName() bool { return r.byName }

// String renders the active variant as it appears in a resource path
func (r Ref[N]) String() string {
	if r.byName {
		return r.name.String()
	}
	return strconv.FormatUint(uint64(r.id), 10)
}

// ResolvePokemonRef turns an optional id and optional raw name into a
// reference. Exactly one must be present; otherwise an InvalidArgumentError
// with Field op is returned before the name is validated.
func ResolvePokemonRef(op string, id *uint32, name *string) (PokemonRef, error) {
	return resolveRef(op, id, name, NewPokemonName)
}

// ResolveGenerationRef is ResolvePokemonRef for generations.
func ResolveGenerationRef(op string, id *uint32, name *string) (GenerationRef, error) {
	return resolveRef(op, id, name, NewGenerationName)
}

func resolveRef[N resourceName](op string, id *uint32, name *string, newName func(string) (N, error)) (Ref[N], error) {
	if (id == nil) == (name == nil) {
		return Ref[N]{}, &InvalidArgumentError{
			Field:  op,
			Reason: "provide exactly one of `id` or `name`",
		}
	}
	if id != nil {
		return Ref[N]{id: *id}, nil
	}
	n, err := newName(*name)
	if err != nil {
		return Ref[N]{}, err
	}
	return Ref[N]{name: n, byName: true}, nil
}
