package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

type promptPlayer struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Rating float64      `json:"rating"`
	Gender string       `json:"gender"`
	Skills promptSkills `json:"skills"`
}

type promptSkills struct {
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Reception int `json:"reception"`
	Setting   int `json:"setting"`
	Serve     int `json:"serve"`
	Block     int `json:"block"`
}

// BuildPrompt renders the balancing instruction for one draw. The gender
// weighting rule is stated to the oracle, never computed locally.
func BuildPrompt(players []entities.Player, teamCount int) (string, error) {
	roster := make([]promptPlayer, 0, len(players))
	for _, p := range players {
		roster = append(roster, promptPlayer{
			ID:     p.ID,
			Name:   p.Name,
			Rating: p.Rating,
			Gender: string(p.Gender),
			Skills: promptSkills{
				Attack:    p.Skills.Attack,
				Defense:   p.Skills.Defense,
				Reception: p.Skills.Reception,
				Setting:   p.Skills.Setting,
				Serve:     p.Skills.Serve,
				Block:     p.Skills.Block,
			},
		})
	}
	encoded, err := json.Marshal(roster)
	if err != nil {
		return "", fmt.Errorf("marshal roster: %w", err)
	}

	keys := make([]string, 0, teamCount)
	for i := 1; i <= teamCount; i++ {
		keys = append(keys, fmt.Sprintf(`"team%d": ["id", ...]`, i))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Divide these volleyball players into %d technically balanced teams based on rating, gender and individual skills.\n", teamCount)
	b.WriteString("IMPORTANT RULE: balance must account for gender. In this group, female players historically carry a lower intensity/speed weight than male players. Level the teams technically with that asymmetry in mind.\n")
	fmt.Fprintf(&b, "Respond with a single JSON object and nothing else, exactly this shape: { %s }. Each array holds player ids; every id must appear in exactly one team.\n", strings.Join(keys, ", "))
	fmt.Fprintf(&b, "Players: %s", encoded)
	return b.String(), nil
}

// ParseAssignment decodes and strictly validates an oracle reply: exactly the
// keys team1..teamN, each an array of strings. Anything else is ErrBadResponse.
func ParseAssignment(raw string, teamCount int) ([][]string, error) {
	trimmed := stripFences(raw)

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(payload) != teamCount {
		return nil, fmt.Errorf("%w: expected %d team keys, got %d", ErrBadResponse, teamCount, len(payload))
	}

	teams := make([][]string, teamCount)
	for i := 1; i <= teamCount; i++ {
		key := fmt.Sprintf("team%d", i)
		rawIDs, ok := payload[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing key %q", ErrBadResponse, key)
		}
		var ids []string
		if err := json.Unmarshal(rawIDs, &ids); err != nil {
			return nil, fmt.Errorf("%w: key %q is not an array of strings", ErrBadResponse, key)
		}
		teams[i-1] = ids
	}
	return teams, nil
}

// stripFences removes a markdown code fence some models wrap JSON output in.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
