package gateway

import (
	"fmt"
	"strings"
)

const connectionTestPrompt = "Write a short, friendly greeting to confirm the connection works."

const audioAnalysisPrompt = "Analyze this audio file and describe the musical genre, tempo, " +
	"detected instruments, and overall characteristics:"

func musicIntroPrompt(style, genre, language, duration string) string {
	return fmt.Sprintf(`Generate a %s intro in %s for a %s music program.
The intro must:
- Last approximately %s
- Be energetic and engaging
- Include a call to action
- Mention the %s genre
- Keep a professional yet friendly tone`, style, language, genre, duration, genre)
}

func playlistPrompt(name, theme string, songs []string) string {
	return fmt.Sprintf(`Generate an appealing description for a playlist named "%s".

Theme or mood: %s

Songs included:
%s

The description must:
- Capture the mood of the songs
- Appeal to listeners
- Mention the moments this playlist suits best
- Stay between 50 and 150 words`, name, theme, strings.Join(songs, "\n"))
}

func preferencesPrompt(userData string) string {
	return fmt.Sprintf(`Analyze the following user music preferences and provide useful insights:

User data:
%s

Provide:
1. A summary of their favorite genres
2. Patterns in their listening habits
3. New genres they might enjoy
4. Artists similar to their favorites
5. Music trends relevant to them`, userData)
}

func recommendationPrompt(preferences, history string) string {
	return fmt.Sprintf(`Based on the following user preferences and listening history, generate personalized music recommendations:

User preferences:
%s

Recent listening history:
%s

Provide:
1. Five recommended songs with artist and title
2. Genres the user might want to explore
3. A brief explanation of why these recommendations fit`, preferences, history)
}
