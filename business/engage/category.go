package engage

// Category is one of the seven fixed emotion labels the classifier scores
// per frame. Declaration order matters: every tie in the pipeline is broken
// by it.
type Category string

const (
	Angry     Category = "angry"
	Disgusted Category = "disgusted"
	Fearful   Category = "fearful"
	Happy     Category = "happy"
	Neutral   Category = "neutral"
	Sad       Category = "sad"
	Surprised Category = "surprised"
)

// Categories lists every category in declaration order.
var Categories = []Category{Angry, Disgusted, Fearful, Happy, Neutral, Sad, Surprised}

// NonNeutral lists the categories that participate in proportion
// normalization and classification.
var NonNeutral = []Category{Angry, Disgusted, Fearful, Happy, Sad, Surprised}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
