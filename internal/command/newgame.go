package command

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/mints/internal/mines"
)

// NewGame holds the key=value arguments of !new. Zero fields keep the value
// from the difficulty preset, or from the current round when no difficulty
// is given.
type NewGame struct {
	Width      int    `schema:"width"`
	Height     int    `schema:"height"`
	Mines      int    `schema:"mines"`
	Difficulty string `schema:"difficulty"`
}

var newGameDecoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(false)
	return dec
}()

func decodeNewGame(args []string) (*NewGame, error) {
	src := url.Values{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" || v == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		src.Add(strings.ToLower(k), v)
	}

	var ng NewGame
	if err := newGameDecoder.Decode(&ng, src); err != nil {
		return nil, describeSchemaError(err)
	}
	return &ng, nil
}

func describeSchemaError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return err
	}
	keys := slices.Sorted(maps.Keys(multi))
	msgs := make([]string, 0, len(keys))
	for _, key := range keys {
		e := multi[key]
		var conv schema.ConversionError
		var unknown schema.UnknownKeyError
		switch {
		case errors.As(e, &conv):
			msgs = append(msgs, fmt.Sprintf("%s must be a number", key))
		case errors.As(e, &unknown):
			msgs = append(msgs, fmt.Sprintf("unknown key %s", key))
		default:
			msgs = append(msgs, e.Error())
		}
	}
	return errors.New(strings.Join(msgs, ", "))
}

// Params resolves the requested board against the current one. The result
// is validated against the custom size limit, so an impossible or
// oversized board is reported before anything is generated.
func (ng NewGame) Params(current mines.GameParams) (mines.GameParams, error) {
	params := current
	if ng.Difficulty != "" {
		d, err := mines.ParseDifficulty(ng.Difficulty)
		if err != nil {
			return current, err
		}
		params = d.Params()
	}
	if ng.Width != 0 {
		params.Width = ng.Width
	}
	if ng.Height != 0 {
		params.Height = ng.Height
	}
	if ng.Mines != 0 {
		params.MineCount = ng.Mines
	}
	if err := params.ValidateCustom(); err != nil {
		return current, err
	}
	return params, nil
}
