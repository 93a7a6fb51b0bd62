package user

import "Karyatra/be/internal/db"

type RepositoryImpl struct {
	db *db.KDb
}

func NewRepositoryImpl(db *db.KDb) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetById(id int) (User, error) {
	var user User
	err := r.db.Get(&user, "SELECT * FROM user_account WHERE id = $1", id)
	return user, err
}

func (r *RepositoryImpl) GetByUsername(username string) (User, error) {
	var user User
	err := r.db.Get(&user, "SELECT * FROM user_account WHERE username = $1", username)
	return user, err
}

func (r *RepositoryImpl) Create(user *User) error {
	_, err := r.db.Exec("INSERT INTO user_account (username, password, role) VALUES ($1, $2, $3)",
		user.Username, user.Password, user.Role)
	return err
}
