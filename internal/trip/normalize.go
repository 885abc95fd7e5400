package trip

// Placeholders shown when the planning service left an optional field empty.
const (
	placeholderLocation = "Location not specified"
	placeholderTime     = "Time TBD"
	placeholderDuration = "Duration not specified"
)

// LocatedPoint is the map-plottable projection of an activity.
type LocatedPoint struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Category    Category `json:"category"`
	Coordinates LatLng   `json:"coordinates"`
}

// ScheduleEntry is one row of the day-grouped list view.
type ScheduleEntry struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Time     string   `json:"time"`
	Duration string   `json:"duration"`
	Category Category `json:"category"`
	Notes    string   `json:"notes,omitempty"`
}

// ScheduleDay groups a day's entries under its date.
type ScheduleDay struct {
	Date  string          `json:"date"`
	Items []ScheduleEntry `json:"items"`
}

// View is the pair of derived views the itinerary page renders: located
// points for the map and day-grouped entries for the list.
type View struct {
	Points []LocatedPoint `json:"points"`
	Days   []ScheduleDay  `json:"days"`
}

// Normalize flattens a trip into its derived views. A nil trip or an empty
// itinerary yields empty (non-nil) slices so callers can render an explicit
// "no itinerary" state. An activity without coordinates still appears in
// Days but is excluded from Points: it is schedulable but not mappable.
// Day and activity order is preserved verbatim, never re-sorted.
func Normalize(t *Trip) View {
	v := View{Points: []LocatedPoint{}, Days: []ScheduleDay{}}
	if t == nil {
		return v
	}

	for _, day := range t.Itinerary {
		sd := ScheduleDay{Date: day.Date, Items: []ScheduleEntry{}}
		for _, a := range day.Activities {
			cat := Classify(a)

			location := a.Address
			if location == "" {
				location = placeholderLocation
			}
			displayTime := placeholderTime
			if a.SequencedTime != nil && a.SequencedTime.Start != "" {
				displayTime = a.SequencedTime.Start
			}
			duration := a.EstimatedDuration
			if duration == "" {
				duration = placeholderDuration
			}

			sd.Items = append(sd.Items, ScheduleEntry{
				ID:       a.ID,
				Title:    a.Title,
				Location: location,
				Time:     displayTime,
				Duration: duration,
				Category: cat,
				Notes:    a.Description,
			})

			if a.Coordinates != nil {
				v.Points = append(v.Points, LocatedPoint{
					ID:          a.ID,
					Title:       a.Title,
					Location:    location,
					Category:    cat,
					Coordinates: *a.Coordinates,
				})
			}
		}
		v.Days = append(v.Days, sd)
	}

	return v
}
