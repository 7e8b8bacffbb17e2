package entity

type Movie struct {
	Base
	Title             string
	DurationInMinutes int
}

func NewMovie(title string, durationInMinutes int) *Movie {
	return &Movie{
		Base:              NewBase(),
		Title:             title,
		DurationInMinutes: durationInMinutes,
	}
}

// StorageID derives the legacy integer id used by the data files. It is a
// function of the title, so a title edit re-keys every dependent record.
func (m *Movie) StorageID() int32 {
	return storageHash(m.Title)
}
