package buyers

import (
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/store"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type BuyerDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

func toDTO(b store.Buyer) BuyerDTO {
	return BuyerDTO{
		ID:       b.ID,
		Name:     b.Name,
		Address:  b.Address,
		Username: b.User.Username,
		Email:    b.User.Email,
	}
}

// CreateBuyer creates a buyer profile with its login account.
func CreateBuyer(c *gin.Context) {
	var input struct {
		Name           string `json:"name" binding:"required"`
		Address        string `json:"address"`
		Email          string `json:"email"`
		Username       string `json:"username" binding:"required"`
		Password       string `json:"password" binding:"required"`
		RetypePassword string `json:"retype_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Password != input.RetypePassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hashed := string(hashedPassword)

	var buyer store.Buyer
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user := users.User{
			Username:     input.Username,
			Email:        input.Email,
			Password:     &hashed,
			AuthProvider: "local",
			IsBuyer:      true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		buyer = store.Buyer{
			UserID:  user.ID,
			User:    user,
			Name:    input.Name,
			Address: input.Address,
		}
		return tx.Create(&buyer).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to create buyer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toDTO(buyer))
}

func ListBuyers(c *gin.Context) {
	var buyers []store.Buyer
	if err := database.DB.Preload("User").Find(&buyers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load buyers"})
		return
	}

	out := make([]BuyerDTO, 0, len(buyers))
	for _, b := range buyers {
		out = append(out, toDTO(b))
	}
	c.JSON(http.StatusOK, out)
}

func UpdateBuyer(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Name     string `json:"name" binding:"required"`
		Address  string `json:"address"`
		Email    string `json:"email"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buyer store.Buyer
	if err := database.DB.Preload("User").First(&buyer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Buyer not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		buyer.Name = input.Name
		buyer.Address = input.Address
		buyer.User.Username = input.Username
		buyer.User.Email = input.Email

		if input.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			h := string(hashed)
			buyer.User.Password = &h
		}

		if err := tx.Save(&buyer.User).Error; err != nil {
			return err
		}
		return tx.Save(&buyer).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update buyer"})
		return
	}

	c.JSON(http.StatusOK, toDTO(buyer))
}

// DeleteBuyer removes the buyer with its login account.
func DeleteBuyer(c *gin.Context) {
	id := c.Param("id")

	var buyer store.Buyer
	if err := database.DB.First(&buyer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Buyer not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&store.Buyer{}, buyer.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&users.User{}, buyer.UserID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete buyer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Buyer deleted"})
}
