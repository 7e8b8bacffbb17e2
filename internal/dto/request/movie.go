package request

type AddMovieRequest struct {
	Title             string `validate:"required,min=1,max=200"`
	DurationInMinutes int    `validate:"required,min=1,max=999"`
}

type EditMovieRequest struct {
	Title             string `validate:"required,min=1,max=200"`
	DurationInMinutes int    `validate:"required,min=1,max=999"`
}
