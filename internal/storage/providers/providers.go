package providers

import "github.com/jackc/pgx/v5/pgxpool"

type Providers struct {
	AuthProvider   *AuthProvider
	FormProvider   *FormProvider
	FieldProvider  *FieldProvider
	OptionProvider *OptionProvider
}

func New(db *pgxpool.Pool) *Providers {
	return &Providers{
		AuthProvider:   NewAuthProvider(db),
		FormProvider:   NewFormProvider(db),
		FieldProvider:  NewFieldProvider(db),
		OptionProvider: NewOptionProvider(db),
	}
}
