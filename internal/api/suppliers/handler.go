package suppliers

import (
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/store"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SupplierDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

func toDTO(s store.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:       s.ID,
		Name:     s.Name,
		Address:  s.Address,
		Username: s.User.Username,
		Email:    s.User.Email,
	}
}

// CreateSupplier creates the supplier profile together with its login
// account, the same two-row write the legacy form performed.
func CreateSupplier(c *gin.Context) {
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

	var supplier store.Supplier
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user := users.User{
			Username:     input.Username,
			Email:        input.Email,
			Password:     &hashed,
			AuthProvider: "local",
			IsSupplier:   true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		supplier = store.Supplier{
			UserID:  user.ID,
			User:    user,
			Name:    input.Name,
			Address: input.Address,
		}
		return tx.Create(&supplier).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to create supplier", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toDTO(supplier))
}

func ListSuppliers(c *gin.Context) {
	var suppliers []store.Supplier
	if err := database.DB.Preload("User").Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load suppliers"})
		return
	}

	out := make([]SupplierDTO, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toDTO(s))
	}
	c.JSON(http.StatusOK, out)
}

func UpdateSupplier(c *gin.Context) {
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

	var supplier store.Supplier
	if err := database.DB.Preload("User").First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		supplier.Name = input.Name
		supplier.Address = input.Address
		supplier.User.Username = input.Username
		supplier.User.Email = input.Email

		if input.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			h := string(hashed)
			supplier.User.Password = &h
		}

		if err := tx.Save(&supplier.User).Error; err != nil {
			return err
		}
		return tx.Save(&supplier).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}

	c.JSON(http.StatusOK, toDTO(supplier))
}

// DeleteSupplier removes the supplier with its login account; the profile row
// goes with the user.
func DeleteSupplier(c *gin.Context) {
	id := c.Param("id")

	var supplier store.Supplier
	if err := database.DB.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&store.Supplier{}, supplier.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&users.User{}, supplier.UserID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}
