package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Belzex/recommenderSystem6/internal/models"
)

// Los .dat de MovieLens 1M vienen separados por "::" y codificados en
// windows-1252 (los títulos traen acentos). Se decodifica siempre como
// windows-1252; las filas que no parsean se saltan.

func loadMovies(path string, limit int) ([]models.Movie, error) {
	var out []models.Movie
	err := scanDat(path, limit, func(line string) {
		parts := strings.SplitN(line, "::", 3)
		if len(parts) != 3 {
			return
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return
		}
		out = append(out, models.Movie{MovieID: id, Title: parts[1], Genres: parts[2]})
	})
	return out, err
}

func loadRatings(path string, limit int) ([]models.Rating, error) {
	var out []models.Rating
	err := scanDat(path, limit, func(line string) {
		parts := strings.Split(line, "::")
		if len(parts) != 4 {
			return
		}
		uid, err1 := strconv.Atoi(parts[0])
		mid, err2 := strconv.Atoi(parts[1])
		score, err3 := strconv.ParseFloat(parts[2], 64)
		ts, err4 := strconv.ParseInt(parts[3], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return
		}
		out = append(out, models.Rating{UserID: uid, MovieID: mid, Rating: score, Timestamp: ts})
	})
	return out, err
}

func loadUsers(path string, limit int) ([]models.User, error) {
	var out []models.User
	err := scanDat(path, limit, func(line string) {
		parts := strings.Split(line, "::")
		if len(parts) != 5 {
			return
		}
		id, err1 := strconv.Atoi(parts[0])
		age, err2 := strconv.Atoi(parts[2])
		occ, err3 := strconv.Atoi(parts[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return
		}
		out = append(out, models.User{
			UserID:     id,
			Gender:     parts[1],
			Age:        age,
			Occupation: occ,
			ZipCode:    parts[4],
		})
	})
	return out, err
}

// scanDat recorre un .dat línea por línea decodificando windows-1252.
// limit acota cuántas filas se leen (0 = todas).
func scanDat(path string, limit int, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	n := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if limit > 0 && n >= limit {
			break
		}
		fn(line)
		n++
	}
	return sc.Err()
}
