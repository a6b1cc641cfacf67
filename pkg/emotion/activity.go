package emotion

import "strconv"

// Activity is an optional tag for what the user did that day. The backend
// stores it as a numeric id under the "sports" field.
type Activity struct {
	ID    int
	Label string
}

func (a Activity) String() string {
	return a.Label
}

// Activities returns the closed set of selectable activities.
func Activities() []Activity {
	return []Activity{
		{ID: 1, Label: "running"},
		{ID: 2, Label: "gym"},
		{ID: 3, Label: "swimming"},
		{ID: 4, Label: "cycling"},
		{ID: 5, Label: "walking"},
	}
}

// ActivityLabel resolves an activity id for display. Unknown ids show the
// raw number so saved data never renders blank.
func ActivityLabel(id int) string {
	for _, a := range Activities() {
		if a.ID == id {
			return a.Label
		}
	}
	return strconv.Itoa(id)
}

// ActivityForLabel looks up an activity by its label.
func ActivityForLabel(label string) (Activity, bool) {
	for _, a := range Activities() {
		if a.Label == label {
			return a, true
		}
	}
	return Activity{}, false
}
