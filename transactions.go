package main

import (
	"fmt"
	"net/http"
	"time"

	"eglise/models"
	"eglise/pkg/treasury"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func listTransactionsHandler(c *gin.Context) {
	var transactions []models.Transaction
	if err := db.Order("date desc").Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func createTransactionHandler(c *gin.Context) {
	var req struct {
		Date        models.DateOnly `json:"date" binding:"required"`
		Category    string          `json:"category" binding:"required"`
		Amount      float64         `json:"amount" binding:"required,gt=0"`
		Type        string          `json:"type" binding:"required"`
		Account     string          `json:"account" binding:"required"`
		Description string          `json:"description"`
		Reference   string          `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"message": "type doit être INCOME ou EXPENSE"})
		return
	}
	if req.Account != models.AccountCaisse && req.Account != models.AccountBanque {
		c.JSON(http.StatusBadRequest, gin.H{"message": "account doit être CAISSE ou BANQUE"})
		return
	}
	tx := models.Transaction{
		Date:        req.Date,
		Category:    req.Category,
		Amount:      req.Amount,
		Type:        req.Type,
		Account:     req.Account,
		Description: req.Description,
		Reference:   req.Reference,
		AddedBy:     currentEmail(c),
	}
	if err := db.Create(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "create failed"})
		return
	}
	createNotification(
		"Nouvelle transaction",
		fmt.Sprintf("Une transaction de %.2f (%s) a été enregistrée.", tx.Amount, tx.Type),
		models.NotifFinance,
	)
	c.JSON(http.StatusCreated, tx)
}

func treasuryStatsHandler(c *gin.Context) {
	stats, err := treasuryStatistics(db)
	if err != nil {
		log.Errorf("treasury stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func monthlyStatsHandler(c *gin.Context) {
	income, err := monthlySums(db, models.TypeIncome)
	if err != nil {
		log.Errorf("monthly income sums failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	expense, err := monthlySums(db, models.TypeExpense)
	if err != nil {
		log.Errorf("monthly expense sums failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, treasury.BuildMonthlySeries(income, expense, time.Now()))
}

// treasuryStatistics runs the six scalar sums and derives the balances.
// No rows is not an error: COALESCE turns empty sums into 0.
func treasuryStatistics(db *gorm.DB) (treasury.Statistics, error) {
	sums := []struct {
		txType  string
		account string
		dest    *float64
	}{
		{models.TypeIncome, "", new(float64)},
		{models.TypeExpense, "", new(float64)},
		{models.TypeIncome, models.AccountCaisse, new(float64)},
		{models.TypeExpense, models.AccountCaisse, new(float64)},
		{models.TypeIncome, models.AccountBanque, new(float64)},
		{models.TypeExpense, models.AccountBanque, new(float64)},
	}
	for _, s := range sums {
		q := db.Model(&models.Transaction{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("type = ?", s.txType)
		if s.account != "" {
			q = q.Where("account = ?", s.account)
		}
		if err := q.Scan(s.dest).Error; err != nil {
			return treasury.Statistics{}, err
		}
	}
	return treasury.Compute(*sums[0].dest, *sums[1].dest, *sums[2].dest, *sums[3].dest, *sums[4].dest, *sums[5].dest), nil
}

// monthlySums groups one transaction type by (year, month), newest first.
func monthlySums(db *gorm.DB, txType string) ([]treasury.MonthlyRow, error) {
	rows, err := db.Model(&models.Transaction{}).
		Select("EXTRACT(MONTH FROM date)::int AS month, EXTRACT(YEAR FROM date)::int AS year, SUM(amount) AS total").
		Where("type = ?", txType).
		Group("year, month").
		Order("year DESC, month DESC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []treasury.MonthlyRow
	for rows.Next() {
		var r treasury.MonthlyRow
		if err := rows.Scan(&r.Month, &r.Year, &r.Total); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
