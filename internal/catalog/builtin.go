// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package catalog

// Builtin returns the in-memory sample catalog used when no file is
// configured. It has no mood column, so every track gets DefaultMood, and it
// deliberately contains repeated titles.
func Builtin() *Dataset {
	return NewDataset(builtinTracks())
}

func builtinTracks() []Track {
	return []Track{
		{Title: "Bohemian Rhapsody", Artist: "Queen", Genre: "Rock", Year: 1975, Language: "English"},
		{Title: "Hotel California", Artist: "Eagles", Genre: "Rock", Year: 1976, Language: "English"},
		{Title: "Imagine", Artist: "John Lennon", Genre: "Pop", Year: 1971, Language: "English"},
		{Title: "Stairway to Heaven", Artist: "Led Zeppelin", Genre: "Rock", Year: 1971, Language: "English"},
		{Title: "Like a Rolling Stone", Artist: "Bob Dylan", Genre: "Folk Rock", Year: 1965, Language: "English"},
		{Title: "Hey Jude", Artist: "The Beatles", Genre: "Pop", Year: 1968, Language: "English"},
		{Title: "Smells Like Teen Spirit", Artist: "Nirvana", Genre: "Grunge", Year: 1991, Language: "English"},
		{Title: "Yesterday", Artist: "The Beatles", Genre: "Pop", Year: 1965, Language: "English"},
		{Title: "Good Vibrations", Artist: "The Beach Boys", Genre: "Pop", Year: 1966, Language: "English"},
		{Title: "Johnny B. Goode", Artist: "Chuck Berry", Genre: "Rock", Year: 1958, Language: "English"},
		{Title: "My Generation", Artist: "The Who", Genre: "Rock", Year: 1965, Language: "English"},
		{Title: "Respect", Artist: "Aretha Franklin", Genre: "Soul", Year: 1967, Language: "English"},
		{Title: "What's Going On", Artist: "Marvin Gaye", Genre: "Soul", Year: 1971, Language: "English"},
		{Title: "I Want to Hold Your Hand", Artist: "The Beatles", Genre: "Pop", Year: 1963, Language: "English"},
		{Title: "Blowin' in the Wind", Artist: "Bob Dylan", Genre: "Folk", Year: 1963, Language: "English"},
		{Title: "Light My Fire", Artist: "The Doors", Genre: "Rock", Year: 1967, Language: "English"},
		{Title: "A Day in the Life", Artist: "The Beatles", Genre: "Pop", Year: 1967, Language: "English"},
		{Title: "Help!", Artist: "The Beatles", Genre: "Pop", Year: 1965, Language: "English"},
		{Title: "Satisfaction", Artist: "The Rolling Stones", Genre: "Rock", Year: 1965, Language: "English"},
		{Title: "Purple Haze", Artist: "Jimi Hendrix", Genre: "Rock", Year: 1967, Language: "English"},
		{Title: "Tum Hi Ho", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2013, Language: "Hindi"},
		{Title: "Chaiyya Chaiyya", Artist: "A.R. Rahman", Genre: "Bollywood", Year: 1998, Language: "Hindi"},
		{Title: "Kal Ho Naa Ho", Artist: "Sonu Nigam", Genre: "Bollywood", Year: 2003, Language: "Hindi"},
		{Title: "Tere Sang Yaara", Artist: "Atif Aslam", Genre: "Bollywood", Year: 2017, Language: "Hindi"},
		{Title: "Raabta", Artist: "Pritam", Genre: "Bollywood", Year: 2017, Language: "Hindi"},
		{Title: "Gerua", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2015, Language: "Hindi"},
		{Title: "Agar Tum Saath Ho", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2015, Language: "Hindi"},
		{Title: "Raataan Lambiyan", Artist: "Jubin Nautiyal", Genre: "Bollywood", Year: 2021, Language: "Hindi"},
		{Title: "Kesariya", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2022, Language: "Hindi"},
		{Title: "Tum Se Hi", Artist: "Mohit Chauhan", Genre: "Bollywood", Year: 2007, Language: "Hindi"},
		{Title: "Tum Mile", Artist: "Neeraj Shridhar", Genre: "Bollywood", Year: 2009, Language: "Hindi"},
		{Title: "Tere Bina", Artist: "A.R. Rahman", Genre: "Bollywood", Year: 2007, Language: "Hindi"},
		{Title: "Tum Hi Aana", Artist: "Jubin Nautiyal", Genre: "Bollywood", Year: 2019, Language: "Hindi"},
		{Title: "Raabta", Artist: "Pritam", Genre: "Bollywood", Year: 2017, Language: "Hindi"},
		{Title: "Tum Se Hi", Artist: "Mohit Chauhan", Genre: "Bollywood", Year: 2007, Language: "Hindi"},
		{Title: "Tere Sang Yaara", Artist: "Atif Aslam", Genre: "Bollywood", Year: 2017, Language: "Hindi"},
		{Title: "Kal Ho Naa Ho", Artist: "Sonu Nigam", Genre: "Bollywood", Year: 2003, Language: "Hindi"},
		{Title: "Chaiyya Chaiyya", Artist: "A.R. Rahman", Genre: "Bollywood", Year: 1998, Language: "Hindi"},
		{Title: "Tum Hi Ho", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2013, Language: "Hindi"},
		{Title: "Laung Laachi", Artist: "Mannat Noor", Genre: "Punjabi Pop", Year: 2018, Language: "Punjabi"},
		{Title: "Diljit Dosanjh", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Patiala Peg", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2015, Language: "Punjabi"},
		{Title: "Jatt & Juliet", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2012, Language: "Punjabi"},
		{Title: "G.O.A.T.", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Lover", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Umbrella", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Do You Know", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Born to Shine", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Lover", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Umbrella", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Do You Know", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Born to Shine", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "G.O.A.T.", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{Title: "Jatt & Juliet", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2012, Language: "Punjabi"},
		{Title: "Patiala Peg", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2015, Language: "Punjabi"},
		{Title: "Laung Laachi", Artist: "Mannat Noor", Genre: "Punjabi Pop", Year: 2018, Language: "Punjabi"},
	}
}

// DefaultTracks returns the catalog written to a missing CSV file.
func DefaultTracks() []Track {
	return []Track{
		{Title: "Bohemian Rhapsody", Artist: "Queen", Genre: "Rock", Year: 1975, Language: "English", Mood: "Energetic"},
		{Title: "Hotel California", Artist: "Eagles", Genre: "Rock", Year: 1976, Language: "English", Mood: "Calm"},
		{Title: "Imagine", Artist: "John Lennon", Genre: "Pop", Year: 1971, Language: "English", Mood: "Calm"},
		{Title: "Stairway to Heaven", Artist: "Led Zeppelin", Genre: "Rock", Year: 1971, Language: "English", Mood: "Calm"},
		{Title: "Like a Rolling Stone", Artist: "Bob Dylan", Genre: "Folk Rock", Year: 1965, Language: "English", Mood: "Energetic"},
		{Title: "Hey Jude", Artist: "The Beatles", Genre: "Pop", Year: 1968, Language: "English", Mood: "Happy"},
		{Title: "Smells Like Teen Spirit", Artist: "Nirvana", Genre: "Grunge", Year: 1991, Language: "English", Mood: "Energetic"},
		{Title: "Yesterday", Artist: "The Beatles", Genre: "Pop", Year: 1965, Language: "English", Mood: "Sad"},
		{Title: "Good Vibrations", Artist: "The Beach Boys", Genre: "Pop", Year: 1966, Language: "English", Mood: "Happy"},
		{Title: "Johnny B. Goode", Artist: "Chuck Berry", Genre: "Rock", Year: 1958, Language: "English", Mood: "Energetic"},
		{Title: "My Generation", Artist: "The Who", Genre: "Rock", Year: 1965, Language: "English", Mood: "Energetic"},
		{Title: "Respect", Artist: "Aretha Franklin", Genre: "Soul", Year: 1967, Language: "English", Mood: "Energetic"},
		{Title: "What's Going On", Artist: "Marvin Gaye", Genre: "Soul", Year: 1971, Language: "English", Mood: "Calm"},
		{Title: "I Want to Hold Your Hand", Artist: "The Beatles", Genre: "Pop", Year: 1963, Language: "English", Mood: "Happy"},
		{Title: "Blowin' in the Wind", Artist: "Bob Dylan", Genre: "Folk", Year: 1963, Language: "English", Mood: "Calm"},
		{Title: "Light My Fire", Artist: "The Doors", Genre: "Rock", Year: 1967, Language: "English", Mood: "Romantic"},
		{Title: "A Day in the Life", Artist: "The Beatles", Genre: "Pop", Year: 1967, Language: "English", Mood: "Calm"},
		{Title: "Help!", Artist: "The Beatles", Genre: "Pop", Year: 1965, Language: "English", Mood: "Happy"},
		{Title: "Satisfaction", Artist: "The Rolling Stones", Genre: "Rock", Year: 1965, Language: "English", Mood: "Energetic"},
		{Title: "Purple Haze", Artist: "Jimi Hendrix", Genre: "Rock", Year: 1967, Language: "English", Mood: "Energetic"},
		{Title: "Tum Hi Ho", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2013, Language: "Hindi", Mood: "Romantic"},
		{Title: "Chaiyya Chaiyya", Artist: "A.R. Rahman", Genre: "Bollywood", Year: 1998, Language: "Hindi", Mood: "Energetic"},
		{Title: "Kal Ho Naa Ho", Artist: "Sonu Nigam", Genre: "Bollywood", Year: 2003, Language: "Hindi", Mood: "Sad"},
		{Title: "Tere Sang Yaara", Artist: "Atif Aslam", Genre: "Bollywood", Year: 2017, Language: "Hindi", Mood: "Romantic"},
		{Title: "Raabta", Artist: "Pritam", Genre: "Bollywood", Year: 2017, Language: "Hindi", Mood: "Romantic"},
		{Title: "Gerua", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2015, Language: "Hindi", Mood: "Romantic"},
		{Title: "Agar Tum Saath Ho", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2015, Language: "Hindi", Mood: "Sad"},
		{Title: "Raataan Lambiyan", Artist: "Jubin Nautiyal", Genre: "Bollywood", Year: 2021, Language: "Hindi", Mood: "Romantic"},
		{Title: "Kesariya", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2022, Language: "Hindi", Mood: "Romantic"},
		{Title: "Tum Se Hi", Artist: "Mohit Chauhan", Genre: "Bollywood", Year: 2007, Language: "Hindi", Mood: "Romantic"},
		{Title: "Tum Mile", Artist: "Neeraj Shridhar", Genre: "Bollywood", Year: 2009, Language: "Hindi", Mood: "Romantic"},
		{Title: "Tere Bina", Artist: "A.R. Rahman", Genre: "Bollywood", Year: 2007, Language: "Hindi", Mood: "Sad"},
		{Title: "Tum Hi Aana", Artist: "Jubin Nautiyal", Genre: "Bollywood", Year: 2019, Language: "Hindi", Mood: "Sad"},
		{Title: "Laung Laachi", Artist: "Mannat Noor", Genre: "Punjabi Pop", Year: 2018, Language: "Punjabi", Mood: "Happy"},
		{Title: "Patiala Peg", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2015, Language: "Punjabi", Mood: "Energetic"},
		{Title: "Jatt & Juliet", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2012, Language: "Punjabi", Mood: "Happy"},
		{Title: "G.O.A.T.", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi", Mood: "Energetic"},
		{Title: "Lover", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi", Mood: "Romantic"},
		{Title: "Umbrella", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi", Mood: "Happy"},
		{Title: "Do You Know", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi", Mood: "Romantic"},
		{Title: "Born to Shine", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi", Mood: "Energetic"},
	}
}
