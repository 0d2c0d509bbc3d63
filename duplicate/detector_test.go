package duplicate

import (
	"testing"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

func personWith(id, given, surname, birthDate string, gender types.Gender) *types.Person {
	p := types.NewPerson(id)
	p.SetGender(gender)
	p.Data["given_name"] = given
	p.Data["surname"] = surname
	p.Data["birth_date"] = birthDate
	return p
}

func TestSuggestMerges_FindsPhoneticallySimilarPair(t *testing.T) {
	g := types.NewPersonGraph()
	g.Put(personWith("A", "Catherine", "Smyth", "1920-01-01", types.GenderFemale))
	g.Put(personWith("B", "Catherine", "Smith", "1920-06-01", types.GenderFemale))
	g.Put(personWith("C", "Robert", "Jones", "1955-01-01", types.GenderMale))

	suggestions := SuggestMerges(g, nil)
	if len(suggestions) == 0 {
		t.Fatalf("expected at least one merge suggestion")
	}
	found := false
	for _, s := range suggestions {
		if (s.PersonAID == "A" && s.PersonBID == "B") || (s.PersonAID == "B" && s.PersonBID == "A") {
			found = true
		}
		if s.PersonAID == "C" || s.PersonBID == "C" {
			t.Fatalf("did not expect C to be suggested as a match")
		}
	}
	if !found {
		t.Fatalf("expected A and B to be suggested as a probable merge")
	}
}

func TestSuggestMerges_RespectsMinScore(t *testing.T) {
	g := types.NewPersonGraph()
	g.Put(personWith("A", "Catherine", "Smyth", "1920-01-01", types.GenderFemale))
	g.Put(personWith("B", "Catherine", "Smith", "1920-06-01", types.GenderFemale))

	strict := DefaultConfig()
	strict.MinScore = 1.1 // unattainable
	suggestions := SuggestMerges(g, strict)
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions above an unattainable threshold, got %d", len(suggestions))
	}
}
