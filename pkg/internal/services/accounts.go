package services

import (
	"fmt"

	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{Name: name}).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func NewAccount(name, nick, password string) (models.Account, error) {
	var account models.Account
	var count int64
	if err := database.C.
		Model(&models.Account{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return account, fmt.Errorf("unable to count existing accounts: %v", err)
	}
	if count > 0 {
		return account, fmt.Errorf("username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fmt.Errorf("unable to hash password: %v", err)
	}

	account = models.Account{
		Name:     name,
		Nick:     nick,
		Password: string(hash),
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func CheckPassword(account models.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) == nil
}
